// Package pager implements the incremental pagination window over an
// already-fetched, client-filtered list. It does not perform network
// pagination: the list is complete in memory and only the rendered slice
// grows, one page at a time, when the near-bottom sentinel is reached.
package pager

// PageSize is the default growth step of the visible window.
const PageSize = 10

// Controller tracks the visible window and a generation counter.
//
// The generation increments on every Reset, so a fetch started under an old
// filter state can be recognized as stale when it resolves and its result
// discarded instead of overwriting fresher state.
type Controller struct {
	pageSize   int
	visible    int
	total      int
	loading    bool
	generation uint64
}

// New returns a controller with the given page size (PageSize when <= 0).
// The window starts empty; call Reset when the first filtered list arrives.
func New(pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return &Controller{pageSize: pageSize}
}

// Reset starts a fresh window over a filtered list of length total. It must
// run synchronously with every filter or tab change so stale "loaded more"
// state never renders under the new filters. The caller is expected to also
// scroll its list container back to the top.
func (c *Controller) Reset(total int) {
	c.total = total
	c.visible = min(c.pageSize, total)
	c.loading = false
	c.generation++
}

// Sentinel handles the near-bottom marker becoming visible. When the whole
// list is already shown it is a no-op; otherwise the window grows by one
// page, capped at the list length. Reports whether the window grew.
func (c *Controller) Sentinel() bool {
	if c.visible >= c.total {
		return false
	}
	c.loading = true
	c.visible = min(c.visible+c.pageSize, c.total)
	c.loading = false
	return true
}

// Visible is the current window length. It never decreases except through
// Reset.
func (c *Controller) Visible() int { return c.visible }

// HasMore reports whether part of the filtered list is still hidden.
func (c *Controller) HasMore() bool { return c.visible < c.total }

// Loading reports whether a grow step is in flight. With the synchronous
// Sentinel this is only observable mid-step; it exists for renderers that
// show a spinner row.
func (c *Controller) Loading() bool { return c.loading }

// Generation identifies the current filter epoch. Snapshot it before an
// asynchronous fetch and check Stale when the result arrives.
func (c *Controller) Generation() uint64 { return c.generation }

// Stale reports whether gen belongs to a superseded filter epoch.
func (c *Controller) Stale(gen uint64) bool { return gen != c.generation }

// Window returns the rendered slice items[0:visible]. The input is not
// copied; callers must not mutate the result.
func Window[T any](c *Controller, items []T) []T {
	end := min(c.visible, len(items))
	return items[:end]
}
