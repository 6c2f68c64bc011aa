package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/awesomefanda/adjnt/internal/intent"
	"github.com/awesomefanda/adjnt/internal/model"
)

// Execute performs the action's side effects and builds the reply.
func (uc *implUseCase) Execute(ctx context.Context, sc model.Scope, action intent.Action, now time.Time) (string, error) {
	switch action.Intent {
	case intent.IntentTask:
		return uc.executeTask(ctx, sc, action.Task)
	case intent.IntentDelete:
		return uc.executeDelete(ctx, sc, action.Delete)
	case intent.IntentList:
		return uc.executeList(ctx, sc, action.List)
	case intent.IntentMove:
		return uc.executeMove(ctx, sc, action.Move)
	case intent.IntentRemind:
		return uc.executeRemind(ctx, sc, action.Remind, now)
	case intent.IntentDeleteReminders:
		return uc.executeDeleteReminders(ctx, sc, action.DeleteReminders)
	case intent.IntentUpdateReminder:
		return uc.executeUpdateReminder(ctx, sc, action.UpdateReminder)
	case intent.IntentListReminders:
		return uc.executeListReminders(ctx, sc, action.ListReminders, now)
	case intent.IntentChat:
		return action.Chat.Answer, nil
	case intent.IntentOnboard:
		return ReplyOnboard, nil
	case intent.IntentTime:
		local := now.In(uc.location)
		return fmt.Sprintf(ReplyTimeTemplate, local.Format("Monday, 02 Jan 2006 15:04"), uc.timezone), nil
	default:
		return ReplyUnknown, nil
	}
}
