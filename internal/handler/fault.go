package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/employee-management-api/internal/config"
	"github.com/employee-management-api/internal/faultlog"
)

// FaultReporter фиксирует неожиданные сбои, дошедшие до HTTP-слоя:
// пишет запись в журнал сбоев и отдаёт безопасный ответ
type FaultReporter struct {
	logger *slog.Logger
	faults *faultlog.Store
	env    string
}

// NewFaultReporter создаёт обработчик сбоев для хендлеров
func NewFaultReporter(logger *slog.Logger, faults *faultlog.Store, env string) *FaultReporter {
	return &FaultReporter{logger: logger, faults: faults, env: env}
}

// Report сохраняет сбой и завершает запрос. Ошибка записи в журнал
// не мешает отдать ответ
func (f *FaultReporter) Report(w http.ResponseWriter, r *http.Request, err error) {
	f.logger.Error("internal error",
		slog.Any("error", err),
		slog.String("path", r.URL.Path),
	)

	if appendErr := f.faults.Append(faultlog.Entry{
		Timestamp:   time.Now(),
		Message:     err.Error(),
		Trace:       fmt.Sprintf("%+v", err),
		Path:        r.URL.Path,
		Environment: f.env,
	}); appendErr != nil {
		f.logger.Warn("failed to persist fault entry", slog.Any("error", appendErr))
	}

	if f.env == config.EnvDevelopment {
		respondError(f.logger, w, http.StatusInternalServerError, "internal server error", err.Error())
		return
	}
	respondError(f.logger, w, http.StatusInternalServerError, "internal server error", "")
}
