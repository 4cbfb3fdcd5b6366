package entityspec

import (
	"github.com/khalidh223/planit/internal/argtok"
	"github.com/khalidh223/planit/internal/domain"
	"github.com/khalidh223/planit/internal/perr"
)

// IDSlot matches a positive integer entity id, used by every "mod"/"del"
// pattern's leading id argument.
func IDSlot() ArgSlot {
	return ArgSlot{
		Label: "<id>",
		Kinds: []argtok.Kind{argtok.KindInt},
		Validator: func(a argtok.Arg, _ ValidationContext) error {
			if a.Int <= 0 {
				return perr.Parse("ID must be greater than 0.")
			}
			return nil
		},
	}
}

// EntitySlot matches a bare entity keyword that must equal expected,
// letting "mod card <id> ..." style patterns confirm the keyword agrees
// with the command actually being resolved.
func EntitySlot(expected domain.EntityType) ArgSlot {
	return ArgSlot{
		Label: expected.String(),
		Kinds: []argtok.Kind{argtok.KindEntityType},
		Validator: func(a argtok.Arg, _ ValidationContext) error {
			if a.Entity != expected {
				return perr.Parse("Wrong entity type: expected %s, got %s", expected, a.Entity)
			}
			return nil
		},
	}
}

// optionalCardIDSlot matches a "+C<digits>" reference to an existing
// card, used for the optional card-link argument on events and tasks.
func optionalCardIDSlot() ArgSlot {
	return ArgSlot{
		Label:     "+C<card-id>",
		Kinds:     []argtok.Kind{argtok.KindCardColorId},
		Optional:  true,
		Validator: cardIDValidator,
	}
}

func cardIDValidator(a argtok.Arg, ctx ValidationContext) error {
	if !ctx.CardExists(a.Int) {
		return perr.Parse("Card id %d does not exist.", a.Int)
	}
	return nil
}

func dailyHourRangeValidator(a argtok.Arg, ctx ValidationContext) error {
	daily := ctx.DailyRange()
	if a.TimeRange.Start.Minutes < daily.Start.Minutes || a.TimeRange.End.Minutes > daily.End.Minutes {
		return perr.Parse("Event falls outside of daily hours range %s from config", daily)
	}
	return nil
}

func taskStartDateValidator(a argtok.Arg, ctx ValidationContext) error {
	if a.Date.Before(ctx.ScheduleStartDate()) {
		return perr.Parse("Task due date %s cannot be before schedule start date %s.", a.Date, ctx.ScheduleStartDate())
	}
	return nil
}

// validateEventRecurringDays enforces that a non-recurring event names
// exactly one day of the week.
func validateEventRecurringDays(recurring domain.Bool, days []domain.DayOfWeek) error {
	if !bool(recurring) && len(days) != 1 {
		return perr.Parse("Non-recurring events must have exactly one day.")
	}
	return nil
}

// defaultDaysFor returns every day when recurring, or just today's weekday
// otherwise, used when the optional days-of-week argument was omitted.
func defaultDaysFor(recurring domain.Bool) []domain.DayOfWeek {
	if recurring {
		return domain.AllDaysOfWeek()
	}
	return []domain.DayOfWeek{domain.Today().Weekday()}
}
