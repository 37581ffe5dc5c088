package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/contestants/internal/domain/contestant"
	idgen "github.com/riskibarqy/contestants/internal/platform/id"
	qb "github.com/riskibarqy/contestants/internal/platform/querybuilder"
)

const contestantsTable = "contestants"

var contestantColumns = mustColumns(contestantTableModel{})

// ContestantRepository stores contestants in postgres. Identities that are not
// UUIDs cannot match public_id and are reported as missing without a query.
type ContestantRepository struct {
	db *sqlx.DB
}

func NewContestantRepository(db *sqlx.DB) *ContestantRepository {
	return &ContestantRepository{db: db}
}

func (r *ContestantRepository) Create(ctx context.Context, item contestant.Contestant) (contestant.Contestant, error) {
	insertModel := contestantInsertModel{
		PublicID:    item.ID,
		Name:        item.Name,
		Nickname:    stringToNullable(item.Nickname),
		CountryCode: stringToNullable(item.CountryCode),
		AvatarURL:   stringToNullable(item.AvatarURL),
		Wins:        item.Wins,
		Losses:      item.Losses,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	query, args, err := qb.InsertModel(contestantsTable, insertModel, contestantColumns...)
	if err != nil {
		return contestant.Contestant{}, crerr.Wrap(err, "build create contestant query")
	}

	var row contestantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return contestant.Contestant{}, crerr.Wrap(err, "create contestant")
	}

	return contestantFromRow(row), nil
}

func (r *ContestantRepository) List(ctx context.Context) ([]contestant.Contestant, error) {
	query, args, err := qb.Select(contestantColumns...).From(contestantsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list contestants query")
	}

	var rows []contestantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list contestants")
	}

	out := make([]contestant.Contestant, 0, len(rows))
	for _, row := range rows {
		out = append(out, contestantFromRow(row))
	}

	return out, nil
}

func (r *ContestantRepository) GetByID(ctx context.Context, contestantID string) (contestant.Contestant, bool, error) {
	if !idgen.IsValid(contestantID) {
		return contestant.Contestant{}, false, nil
	}

	query, args, err := qb.Select(contestantColumns...).From(contestantsTable).
		Where(qb.Eq("public_id", contestantID)).
		ToSQL()
	if err != nil {
		return contestant.Contestant{}, false, crerr.Wrap(err, "build get contestant by id query")
	}

	var row contestantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contestant.Contestant{}, false, nil
		}
		return contestant.Contestant{}, false, crerr.Wrapf(err, "get contestant by id %s", contestantID)
	}

	return contestantFromRow(row), true, nil
}

func (r *ContestantRepository) Update(ctx context.Context, item contestant.Contestant) (contestant.Contestant, bool, error) {
	if !idgen.IsValid(item.ID) {
		return contestant.Contestant{}, false, nil
	}

	query, args, err := qb.Update(contestantsTable).
		Set("name", item.Name).
		Set("nickname", stringToNullable(item.Nickname)).
		Set("country_code", stringToNullable(item.CountryCode)).
		Set("avatar_url", stringToNullable(item.AvatarURL)).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		Returning(contestantColumns...).
		ToSQL()
	if err != nil {
		return contestant.Contestant{}, false, crerr.Wrap(err, "build update contestant query")
	}

	return r.getReturning(ctx, "update contestant", query, args)
}

func (r *ContestantRepository) Delete(ctx context.Context, contestantID string) (int64, error) {
	if !idgen.IsValid(contestantID) {
		return 0, nil
	}

	query, args, err := qb.DeleteFrom(contestantsTable).
		Where(qb.Eq("public_id", contestantID)).
		ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build delete contestant query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, crerr.Wrap(err, "delete contestant")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, crerr.Wrap(err, "rows affected delete contestant")
	}

	return affected, nil
}

// Increment relies on a single UPDATE so concurrent calls never lose a count.
func (r *ContestantRepository) Increment(ctx context.Context, contestantID string, counter contestant.Counter) (contestant.Contestant, bool, error) {
	if !counter.Valid() {
		return contestant.Contestant{}, false, crerr.Newf("unknown contestant counter %q", counter)
	}
	if !idgen.IsValid(contestantID) {
		return contestant.Contestant{}, false, nil
	}
	column := string(counter)

	query, args, err := qb.Update(contestantsTable).
		SetExpr(column, column+" + ?", 1).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", contestantID)).
		Returning(contestantColumns...).
		ToSQL()
	if err != nil {
		return contestant.Contestant{}, false, crerr.Wrap(err, "build increment contestant query")
	}

	return r.getReturning(ctx, "increment contestant "+column, query, args)
}

func (r *ContestantRepository) getReturning(ctx context.Context, op, query string, args []any) (contestant.Contestant, bool, error) {
	var row contestantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contestant.Contestant{}, false, nil
		}
		return contestant.Contestant{}, false, crerr.Wrap(err, op)
	}

	return contestantFromRow(row), true, nil
}

func contestantFromRow(row contestantTableModel) contestant.Contestant {
	return contestant.Contestant{
		ID:          row.PublicID,
		Name:        row.Name,
		Nickname:    nullStringToString(row.Nickname),
		CountryCode: nullStringToString(row.CountryCode),
		AvatarURL:   nullStringToString(row.AvatarURL),
		Wins:        row.Wins,
		Losses:      row.Losses,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mustColumns(model any) []string {
	cols, err := qb.Columns(model)
	if err != nil {
		panic(err)
	}
	return cols
}
