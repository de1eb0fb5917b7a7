package policies

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/tribunal/pkg/pagination"
	"github.com/JaimeStill/tribunal/pkg/query"
	"github.com/JaimeStill/tribunal/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a policy repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "policies"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Policy], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Category", "Query", "Owner")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count policies: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPolicy)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) ListOrdered(ctx context.Context) ([]Policy, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanPolicy)
	if err != nil {
		return nil, fmt.Errorf("query ordered policies: %w", err)
	}

	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Policy, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPolicy)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Policy, error) {
	if strings.TrimSpace(cmd.Category) == "" {
		return nil, ErrInvalidPolicy
	}

	insertQ := `
		INSERT INTO policies(category, query, owner, sla, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM policies))
		RETURNING id, category, query, owner, sla, position`

	args := []any{cmd.Category, cmd.Query, cmd.Owner, cmd.SLA}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Policy, error) {
		return repository.QueryOne(ctx, tx, insertQ, args, scanPolicy)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("policy created",
		"id", p.ID,
		"category", p.Category,
		"position", p.Position,
	)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Policy, error) {
	if strings.TrimSpace(cmd.Category) == "" {
		return nil, ErrInvalidPolicy
	}

	updateQ := `
		UPDATE policies
		SET category = $1, query = $2, owner = $3, sla = $4
		WHERE id = $5
		RETURNING id, category, query, owner, sla, position`

	args := []any{cmd.Category, cmd.Query, cmd.Owner, cmd.SLA, id}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Policy, error) {
		return repository.QueryOne(ctx, tx, updateQ, args, scanPolicy)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("policy updated", "id", p.ID, "category", p.Category)
	return &p, nil
}

func (r *repo) Move(ctx context.Context, id uuid.UUID, cmd MoveCommand) (*Policy, error) {
	if cmd.Position < 1 {
		return nil, ErrInvalidPosition
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Policy, error) {
		var current, total int
		row := tx.QueryRowContext(ctx,
			"SELECT position, (SELECT COUNT(*) FROM policies) FROM policies WHERE id = $1",
			id,
		)
		if err := row.Scan(&current, &total); err != nil {
			return Policy{}, err
		}

		target := min(cmd.Position, total)

		switch {
		case target < current:
			if _, err := tx.ExecContext(ctx,
				"UPDATE policies SET position = position + 1 WHERE position >= $1 AND position < $2",
				target, current,
			); err != nil {
				return Policy{}, fmt.Errorf("shift policies down: %w", err)
			}
		case target > current:
			if _, err := tx.ExecContext(ctx,
				"UPDATE policies SET position = position - 1 WHERE position > $1 AND position <= $2",
				current, target,
			); err != nil {
				return Policy{}, fmt.Errorf("shift policies up: %w", err)
			}
		}

		moveQ := `
			UPDATE policies
			SET position = $1
			WHERE id = $2
			RETURNING id, category, query, owner, sla, position`

		return repository.QueryOne(ctx, tx, moveQ, []any{target, id}, scanPolicy)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("policy moved", "id", p.ID, "position", p.Position)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		var position int
		row := tx.QueryRowContext(ctx,
			"DELETE FROM policies WHERE id = $1 RETURNING position",
			id,
		)
		if err := row.Scan(&position); err != nil {
			return struct{}{}, err
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE policies SET position = position - 1 WHERE position > $1",
			position,
		); err != nil {
			return struct{}{}, fmt.Errorf("close position gap: %w", err)
		}

		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("policy deleted", "id", id)
	return nil
}
