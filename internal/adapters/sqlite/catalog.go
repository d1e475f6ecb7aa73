package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/zerr"
)

// GetTask returns the task with id.
func (t *tx) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "get task"), "task_id", id)
	}
	if err != nil {
		return nil, readFailed(err, "get task")
	}
	return task, nil
}

// FindTaskByKey returns the task with key, or nil when there is none.
func (t *tx) FindTaskByKey(ctx context.Context, key string) (*domain.Task, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks t WHERE t.key = ?`, key)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, readFailed(err, "find task by key")
	}
	return task, nil
}

// ListTasks returns all tasks ordered by key.
func (t *tx) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks t ORDER BY t.key`)
	if err != nil {
		return nil, readFailed(err, "list tasks")
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, readFailed(err, "list tasks")
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, readFailed(err, "list tasks")
	}
	return tasks, nil
}

// SaveTask inserts or updates task.
func (t *tx) SaveTask(ctx context.Context, task *domain.Task) error {
	if task.ID == 0 {
		res, err := t.tx.ExecContext(ctx, `
			INSERT INTO tasks (key, name, priority, sort_order, active, due_date, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.Key, task.Name, task.Priority, task.SortOrder, task.Active, nullDate(task.Due),
			formatTime(task.CreatedAt), formatTime(task.UpdatedAt),
		)
		if err != nil {
			return zerr.With(writeFailed(err, "insert task"), "task", task.Key)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return writeFailed(err, "insert task")
		}
		task.ID = id
		return nil
	}

	res, err := t.tx.ExecContext(ctx, `
		UPDATE tasks SET key = ?, name = ?, priority = ?, sort_order = ?, active = ?, due_date = ?, updated_at = ?
		WHERE id = ?`,
		task.Key, task.Name, task.Priority, task.SortOrder, task.Active, nullDate(task.Due),
		formatTime(task.UpdatedAt), task.ID,
	)
	if err != nil {
		return zerr.With(writeFailed(err, "update task"), "task", task.Key)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "update task"), "task_id", task.ID)
	}
	return nil
}

// FindRule returns the rule of taskID, or nil when the task has none.
func (t *tx) FindRule(ctx context.Context, taskID int64) (*domain.ScheduleRule, error) {
	var r ruleRow
	err := t.tx.QueryRowContext(ctx, `SELECT `+ruleColumns+` FROM schedule_rules r WHERE r.task_id = ?`, taskID).
		Scan(r.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, readFailed(err, "find rule")
	}
	rule, err := r.rule()
	if err != nil {
		return nil, readFailed(err, "find rule")
	}
	return &rule, nil
}

// SaveRule upserts the rule of rule.TaskID.
func (t *tx) SaveRule(ctx context.Context, rule domain.ScheduleRule) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO schedule_rules (task_id, rrule, start_date, end_date, active, timezone)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (task_id) DO UPDATE SET
			rrule = excluded.rrule,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			active = excluded.active,
			timezone = excluded.timezone`,
		rule.TaskID, rule.RRule, rule.Start.String(), nullDate(rule.End), rule.Active, rule.TimezoneOrDefault(),
	)
	if err != nil {
		return zerr.With(writeFailed(err, "save rule"), "task_id", rule.TaskID)
	}
	return nil
}

// DeleteRule removes the rule of taskID.
func (t *tx) DeleteRule(ctx context.Context, taskID int64) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM schedule_rules WHERE task_id = ?`, taskID); err != nil {
		return zerr.With(writeFailed(err, "delete rule"), "task_id", taskID)
	}
	return nil
}

// ListActiveRules returns the rules the generator considers for date.
func (t *tx) ListActiveRules(ctx context.Context, date domain.Date) ([]domain.ScheduledTask, error) {
	day := date.String()
	rows, err := t.tx.QueryContext(ctx, `
		SELECT `+ruleColumns+`, `+taskColumns+`
		FROM schedule_rules r
		JOIN tasks t ON t.id = r.task_id
		WHERE r.active = 1 AND t.active = 1
			AND r.start_date <= ?
			AND (r.end_date IS NULL OR r.end_date >= ?)
		ORDER BY t.priority, t.sort_order, t.id`, day, day)
	if err != nil {
		return nil, readFailed(err, "list active rules")
	}
	defer func() { _ = rows.Close() }()

	var out []domain.ScheduledTask
	for rows.Next() {
		var (
			rr ruleRow
			tr taskRow
		)
		if err := rows.Scan(append(rr.dest(), tr.dest()...)...); err != nil {
			return nil, readFailed(err, "list active rules")
		}
		rule, err := rr.rule()
		if err != nil {
			return nil, readFailed(err, "list active rules")
		}
		task, err := tr.task()
		if err != nil {
			return nil, readFailed(err, "list active rules")
		}
		out = append(out, domain.ScheduledTask{Rule: rule, Task: task})
	}
	if err := rows.Err(); err != nil {
		return nil, readFailed(err, "list active rules")
	}
	return out, nil
}
