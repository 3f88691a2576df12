package task_case

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	"github.com/thomas0124/estate-portal/internal/period"
)

// CalculateTaskProgress derives the checklist completion summary. Six fields
// count toward progress; post-processing is administrative wrap-up and stays
// out of the percentage.
func CalculateTaskProgress(task *entity.PropertyTaskEntity) entity.TaskProgress {
	completed, total := 0, 0
	count := func(done bool) {
		total++
		if done {
			completed++
		}
	}

	count(task.Reform.Status.Done())
	count(task.LoanProcedure.Status.Done())
	count(task.Survey.Status.Done())
	count(task.Demolition.Status.Done())
	count(task.MortgageCancellation.Status.Done())
	count(task.Registration.Status.Done())

	progress := 0
	if total > 0 {
		progress = int(math.Round(100 * float64(completed) / float64(total)))
	}

	return entity.TaskProgress{Completed: completed, Total: total, Progress: progress}
}

// TaskOverdue reports whether the settlement date has passed while the
// checklist is still incomplete. Only the calendar date counts.
func TaskOverdue(task *entity.PropertyTaskEntity, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	settlement := task.SettlementDate
	settlementDay := time.Date(settlement.Year(), settlement.Month(), settlement.Day(), 0, 0, 0, 0, time.Local)
	return settlementDay.Before(today) && CalculateTaskProgress(task).Progress < 100
}

// ParseEstimatedSales splits a "sell/buy" pair into its two sides. Either
// side that fails to parse counts as zero; a malformed pair is 0/0.
func ParseEstimatedSales(s string) (sell, buy int64) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	sell, _ = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	buy, _ = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	return sell, buy
}

// FilterTasks applies the board filter with logical AND and orders the
// result by settlement date. Completed checklists are hidden unless
// ShowCompleted is set.
func FilterTasks(all []entity.PropertyTaskEntity, filter *task_dto.TaskListFilter) []entity.PropertyTaskEntity {
	out := make([]entity.PropertyTaskEntity, 0, len(all))

	for _, task := range all {
		if filter != nil {
			if len(filter.Handlers) > 0 && !containsString(filter.Handlers, task.HandlerName) {
				continue
			}
			if filter.SettlementStart != nil && dayOf(task.SettlementDate).Before(dayOf(*filter.SettlementStart)) {
				continue
			}
			if filter.SettlementEnd != nil && dayOf(task.SettlementDate).After(dayOf(*filter.SettlementEnd)) {
				continue
			}
			if !filter.ShowCompleted && CalculateTaskProgress(&task).Progress == 100 {
				continue
			}
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SettlementDate.Before(out[j].SettlementDate)
	})

	return out
}

// Statistics sums up the visible tasks: count plus the sell and buy sides of
// every estimated sales pair.
func Statistics(tasks []entity.PropertyTaskEntity) task_dto.TaskStatistics {
	var total int64
	for _, task := range tasks {
		sell, buy := ParseEstimatedSales(task.EstimatedSales)
		total += sell + buy
	}
	return task_dto.TaskStatistics{Count: len(tasks), TotalSales: total}
}

// MonthlyStatisticsFor buckets tasks by settlement month. Every period of the
// window gets an entry, including empty months.
func MonthlyStatisticsFor(tasks []entity.PropertyTaskEntity, periods []period.Period) map[string]task_dto.MonthStatistics {
	out := make(map[string]task_dto.MonthStatistics, len(periods))
	for _, p := range periods {
		var stat task_dto.MonthStatistics
		for _, task := range tasks {
			if !p.Contains(task.SettlementDate) {
				continue
			}
			sell, buy := ParseEstimatedSales(task.EstimatedSales)
			stat.Count++
			stat.MonthlySales += sell + buy
		}
		out[p.Label] = stat
	}
	return out
}

// HandlerStatisticsFor groups the tasks settling inside the window by
// handler name.
func HandlerStatisticsFor(tasks []entity.PropertyTaskEntity, window period.Period) map[string]task_dto.HandlerStatistics {
	out := make(map[string]task_dto.HandlerStatistics)
	for _, task := range tasks {
		if !window.Contains(task.SettlementDate) {
			continue
		}
		sell, buy := ParseEstimatedSales(task.EstimatedSales)
		stat := out[task.HandlerName]
		stat.Count++
		stat.TotalSales += sell + buy
		out[task.HandlerName] = stat
	}
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func applyDetail[S ~string](dst *entity.TaskDetail[S], in *task_dto.TaskDetailInput) {
	if in == nil {
		return
	}
	if in.Status != "" {
		dst.Status = S(in.Status)
	}
	dst.PlannedDate = in.PlannedDate
	dst.CompletionDate = in.CompletionDate
	dst.CompanyName = in.CompanyName
	dst.ContactPerson = in.ContactPerson
	dst.Bank = in.Bank
	dst.JudicialScrivener = in.JudicialScrivener
	dst.Notes = in.Notes
}
