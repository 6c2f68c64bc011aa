package usecase

import (
	"time"

	"github.com/awesomefanda/adjnt/internal/assistant"
	"github.com/awesomefanda/adjnt/internal/intent/classifier"
	"github.com/awesomefanda/adjnt/internal/intent/validator"
	"github.com/awesomefanda/adjnt/internal/reminder"
	"github.com/awesomefanda/adjnt/internal/vault"
	"github.com/awesomefanda/adjnt/pkg/datemath"
	"github.com/awesomefanda/adjnt/pkg/gcalendar"
	pkgLog "github.com/awesomefanda/adjnt/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier classifier.Classifier
	validator  validator.Validator
	vaultRepo  vault.Repository
	scheduler  reminder.Scheduler
	calendar   *gcalendar.Client // nil when no credentials configured
	calendarID string            // empty means the account's primary calendar
	dateMath   *datemath.Parser
	timezone   string
	location   *time.Location
}

// Ensure implUseCase implements assistant.UseCase interface
var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. calendar may be nil;
// reminders then simply skip the calendar mirror.
func New(
	l pkgLog.Logger,
	cls classifier.Classifier,
	val validator.Validator,
	vaultRepo vault.Repository,
	scheduler reminder.Scheduler,
	calendar *gcalendar.Client,
	calendarID string,
	dateMath *datemath.Parser,
	timezone string,
) (*implUseCase, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:          l,
		classifier: cls,
		validator:  val,
		vaultRepo:  vaultRepo,
		scheduler:  scheduler,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		timezone:   timezone,
		location:   loc,
	}, nil
}
