package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/lostlink/internal/client/api"
	"github.com/dmitrijs2005/lostlink/internal/client/config"
	"github.com/dmitrijs2005/lostlink/internal/client/filter"
	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/pager"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
	"github.com/dmitrijs2005/lostlink/internal/client/services"
	"github.com/dmitrijs2005/lostlink/internal/client/session"
	"github.com/dmitrijs2005/lostlink/internal/logging"
)

// Service surfaces the commands depend on. The concrete services satisfy
// them; command tests substitute fakes.
type authService interface {
	Login(ctx context.Context, username, password string) (models.Me, error)
	Logout(ctx context.Context) error
	Revalidate(ctx context.Context) (models.Me, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Me, error)
	ResetPassword(ctx context.Context, current, newPassword, confirm string) error
}

type itemService interface {
	List(ctx context.Context, full bool, status models.ItemStatus) ([]models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	Create(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	UpdateStatus(ctx context.Context, item models.Item, to models.ItemStatus, note string) (models.Item, error)
	Delete(ctx context.Context, item models.Item) error
	BulkUpdateStatus(ctx context.Context, items []models.Item, to models.ItemStatus, note string) error
	BulkDelete(ctx context.Context, items []models.Item) error
}

type officeService interface {
	List(ctx context.Context) ([]models.Office, error)
	Create(ctx context.Context, req models.CreateOfficeRequest) (models.Office, error)
	Update(ctx context.Context, id int64, req models.UpdateOfficeRequest) (models.Office, error)
	Delete(ctx context.Context, id int64) error
}

type locationService interface {
	List(ctx context.Context) ([]models.Location, error)
	Create(ctx context.Context, slug, name string, hours models.WorkHours) (models.Location, error)
	Update(ctx context.Context, id int64, slug, name *string, hours *models.WorkHours) (models.Location, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (models.Category, error)
	Update(ctx context.Context, id int64, name string) (models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type userService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	Disable(ctx context.Context, id int64) error
}

type reportService interface {
	General(ctx context.Context, params models.ReportParams) (models.Report, error)
	Public(ctx context.Context, period string) (models.PublicReport, error)
}

// App is the console application. It owns the session store, the query
// cache, and one service per backend resource.
type App struct {
	config  *config.Config
	logger  logging.Logger
	session *session.Store
	cache   *query.Cache

	auth       authService
	items      itemService
	offices    officeService
	locations  locationService
	categories categoryService
	users      userService
	reports    reportService

	reader *bufio.Reader

	// items view state
	tab      models.ItemStatus
	filters  filter.State
	pager    *pager.Controller
	fetched  []models.Item
	filtered []models.Item
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.InitDB(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing local state: %w", err)
	}

	store := session.NewStore(session.NewSQLiteRepository(db))
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	cache := query.NewCache()

	apiClient := api.New(cfg.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithTokenSource(store.Token),
		api.WithLogger(logger),
		api.WithAuthFailureHandler(func() {
			cache.Clear()
			if err := store.Logout(context.Background()); err != nil {
				logger.Error(context.Background(), "forced logout", "error", err)
			}
			printlnFn("Session expired, please log in again")
		}),
	)

	return &App{
		config:     cfg,
		logger:     logger,
		session:    store,
		cache:      cache,
		auth:       services.NewAuthService(apiClient, store, cache),
		items:      services.NewItemService(apiClient, cache),
		offices:    services.NewOfficeService(apiClient, cache),
		locations:  services.NewLocationService(apiClient, cache),
		categories: services.NewCategoryService(apiClient, cache),
		users:      services.NewUserService(apiClient, cache),
		reports:    services.NewReportService(apiClient, cache),
		reader:     bufio.NewReader(os.Stdin),
		pager:      pager.New(pager.PageSize),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus builds the prompt suffix: the logged-in user plus a warning
// when the token expires within five minutes.
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Username
	}
	if exp, ok := a.session.TokenExpiry(); ok && time.Until(exp) < 5*time.Minute {
		s += " token expiring"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run revalidates a persisted session and enters the REPL. It returns when
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to LostLink console (type 'help' for commands)")

	if a.session.IsAuthenticated() {
		if me, err := a.auth.Revalidate(ctx); err == nil {
			printlnFn("Logged in as", me.Username)
		} else {
			printlnFn("Stored session is no longer valid, please log in again")
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
