// Package services contains the application services for the LostLink
// client. Each service composes a resource API client with the shared query
// cache and declares which cache prefixes its mutations invalidate.
// Business-rule guards (transition table, delete-only-submitted, active-only
// login) live here, in front of the network.
package services

import (
	"strconv"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

// Cache key builders shared by the services. Lists and single records live
// under separate prefixes so invalidating one does not needlessly drop the
// other.
func itemsKey(full bool, status models.ItemStatus) query.Key {
	return query.NewKey("items", strconv.FormatBool(full), string(status))
}

func itemKey(id int64) query.Key {
	return query.NewKey("item", strconv.FormatInt(id, 10))
}

func officesKey() query.Key    { return query.NewKey("offices") }
func locationsKey() query.Key  { return query.NewKey("locations") }
func categoriesKey() query.Key { return query.NewKey("categories") }
func usersKey() query.Key      { return query.NewKey("users") }

func reportKey(params models.ReportParams) query.Key {
	return query.NewKey("report", params.Scope, params.Period)
}
