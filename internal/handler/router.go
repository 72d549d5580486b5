package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-management-api/internal/config"
	"github.com/employee-management-api/internal/faultlog"
	"github.com/employee-management-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	faults      *faultlog.Store
	env         string
	empHandler  *EmployeeHandler
	deptHandler *DepartmentHandler
	dashHandler *DashboardHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	empHandler *EmployeeHandler,
	deptHandler *DepartmentHandler,
	dashHandler *DashboardHandler,
	logger *slog.Logger,
	faults *faultlog.Store,
	env string,
) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		faults:      faults,
		env:         env,
		empHandler:  empHandler,
		deptHandler: deptHandler,
		dashHandler: dashHandler,
	}
}

// Setup настраивает все маршруты и оборачивает их в middleware.
// Recoverer стоит внешним слоем: любой необработанный сбой ниже по цепочке
// попадает в журнал сбоев и превращается в безопасный ответ
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/employees", r.employeesRouter)
	r.mux.HandleFunc("/departments/", r.departmentsRouter)
	r.mux.HandleFunc("/departments", r.departmentsRouter)
	r.mux.HandleFunc("/dashboard", r.dashboardRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Тестовый маршрут сбоя доступен только в development
	if r.env == config.EnvDevelopment {
		r.mux.HandleFunc("/boom", func(w http.ResponseWriter, req *http.Request) {
			panic(errors.New("this is a test failure"))
		})
	}

	handler := middleware.Logger(r.logger)(r.mux)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger, r.faults, r.env)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.empHandler.List(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// /employees/{id}
	switch req.Method {
	case http.MethodGet:
		r.empHandler.GetByID(w, req)
	case http.MethodPut:
		r.empHandler.Update(w, req)
	case http.MethodDelete:
		r.empHandler.Delete(w, req)
	default:
		methodNotAllowed(w)
	}
}

// departmentsRouter обрабатывает все запросы к /departments
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/departments")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.GetAll(w, req)
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	// /departments/{id}
	switch req.Method {
	case http.MethodGet:
		r.deptHandler.GetByID(w, req)
	case http.MethodPut:
		r.deptHandler.Update(w, req)
	case http.MethodDelete:
		r.deptHandler.Delete(w, req)
	default:
		methodNotAllowed(w)
	}
}

func (r *Router) dashboardRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	r.dashHandler.Index(w, req)
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}
