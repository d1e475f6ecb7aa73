package sqlite

import (
	"database/sql"
	"time"

	"go.trai.ch/hearth/internal/core/domain"
)

const timeLayout = time.RFC3339Nano

const taskColumns = `t.id, t.key, t.name, t.priority, t.sort_order, t.active, t.due_date, t.created_at, t.updated_at`

const instanceColumns = `i.id, i.task_id, i.instance_date, i.status, i.source, i.assigned_order,
	i.completion_order, i.completed_at, i.skipped_at, i.created_at, i.updated_at`

const ruleColumns = `r.task_id, r.rrule, r.start_date, r.end_date, r.active, r.timezone`

type scanner interface {
	Scan(dest ...any) error
}

type taskRow struct {
	id        int64
	key       string
	name      string
	priority  int
	sortOrder int
	active    bool
	due       sql.NullString
	createdAt string
	updatedAt string
}

func (r *taskRow) dest() []any {
	return []any{&r.id, &r.key, &r.name, &r.priority, &r.sortOrder, &r.active, &r.due, &r.createdAt, &r.updatedAt}
}

func (r *taskRow) task() (domain.Task, error) {
	t := domain.Task{
		ID:        r.id,
		Key:       r.key,
		Name:      r.name,
		Priority:  r.priority,
		SortOrder: r.sortOrder,
		Active:    r.active,
	}
	var err error
	if t.Due, err = parseNullDate(r.due); err != nil {
		return domain.Task{}, err
	}
	if t.CreatedAt, err = time.Parse(timeLayout, r.createdAt); err != nil {
		return domain.Task{}, err
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, r.updatedAt); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

type instanceRow struct {
	id              int64
	taskID          int64
	date            string
	status          string
	source          string
	assignedOrder   int
	completionOrder sql.NullInt64
	completedAt     sql.NullString
	skippedAt       sql.NullString
	createdAt       string
	updatedAt       string
}

func (r *instanceRow) dest() []any {
	return []any{
		&r.id, &r.taskID, &r.date, &r.status, &r.source, &r.assignedOrder,
		&r.completionOrder, &r.completedAt, &r.skippedAt, &r.createdAt, &r.updatedAt,
	}
}

func (r *instanceRow) instance() (domain.TaskInstance, error) {
	inst := domain.TaskInstance{
		ID:            r.id,
		TaskID:        r.taskID,
		Status:        domain.Status(r.status),
		Source:        domain.Source(r.source),
		AssignedOrder: r.assignedOrder,
	}
	var err error
	if inst.Date, err = domain.ParseDate(r.date); err != nil {
		return domain.TaskInstance{}, err
	}
	if r.completionOrder.Valid {
		order := int(r.completionOrder.Int64)
		inst.CompletionOrder = &order
	}
	if inst.CompletedAt, err = parseNullTime(r.completedAt); err != nil {
		return domain.TaskInstance{}, err
	}
	if inst.SkippedAt, err = parseNullTime(r.skippedAt); err != nil {
		return domain.TaskInstance{}, err
	}
	if inst.CreatedAt, err = time.Parse(timeLayout, r.createdAt); err != nil {
		return domain.TaskInstance{}, err
	}
	if inst.UpdatedAt, err = time.Parse(timeLayout, r.updatedAt); err != nil {
		return domain.TaskInstance{}, err
	}
	return inst, nil
}

type ruleRow struct {
	taskID   int64
	rrule    string
	start    string
	end      sql.NullString
	active   bool
	timezone string
}

func (r *ruleRow) dest() []any {
	return []any{&r.taskID, &r.rrule, &r.start, &r.end, &r.active, &r.timezone}
}

func (r *ruleRow) rule() (domain.ScheduleRule, error) {
	rule := domain.ScheduleRule{
		TaskID:   r.taskID,
		RRule:    r.rrule,
		Active:   r.active,
		Timezone: r.timezone,
	}
	var err error
	if rule.Start, err = domain.ParseDate(r.start); err != nil {
		return domain.ScheduleRule{}, err
	}
	if rule.End, err = parseNullDate(r.end); err != nil {
		return domain.ScheduleRule{}, err
	}
	return rule, nil
}

func scanInstance(row scanner) (*domain.TaskInstance, error) {
	var r instanceRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	inst, err := r.instance()
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func scanTask(row scanner) (*domain.Task, error) {
	var r taskRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	t, err := r.task()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullDate(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseNullDate(s sql.NullString) (*domain.Date, error) {
	if !s.Valid {
		return nil, nil
	}
	d, err := domain.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
