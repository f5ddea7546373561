package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/material"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/cache"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/logger"
)

const materialCacheTTL = 5 * time.Minute

// postgresRepository is the concrete material.Repository over pgx.
// Reads join authors and users so every returned material carries its
// author and creator summaries.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) material.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// joinedSelect is the shared projection for all single-material reads
const joinedSelect = `
	SELECT
		m.id, m.title, m.type, m.status, m.description,
		m.isbn, m.pages, m.doi, m.url, m.duration_min,
		m.author_id, m.creator_id, m.created_at, m.updated_at,
		a.id, a.name, a.type, a.data_nascimento, a.cidade,
		u.id, u.email
	FROM materials m
	JOIN autores a ON a.id = m.author_id
	JOIN users u ON u.id = m.creator_id
`

func scanMaterial(row pgx.Row) (*material.Material, error) {
	var m material.Material
	var a material.AuthorSummary
	var c material.CreatorSummary

	err := row.Scan(
		&m.ID, &m.Title, &m.Type, &m.Status, &m.Description,
		&m.ISBN, &m.Pages, &m.DOI, &m.URL, &m.DurationMin,
		&m.AuthorID, &m.CreatorID, &m.CreatedAt, &m.UpdatedAt,
		&a.ID, &a.Name, &a.Type, &a.DataNascimento, &a.Cidade,
		&c.ID, &c.Email,
	)
	if err != nil {
		return nil, err
	}

	m.Author = &a
	m.Creator = &c
	return &m, nil
}

func (r *postgresRepository) Create(ctx context.Context, m *material.Material) (*material.Material, error) {
	query := `
		INSERT INTO materials (
			title, type, status, description,
			isbn, pages, doi, url, duration_min,
			author_id, creator_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, NOW(), NOW()
		)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		m.Title,
		m.Type,
		m.Status,
		m.Description,
		m.ISBN,
		m.Pages,
		m.DOI,
		m.URL,
		m.DurationMin,
		m.AuthorID,
		m.CreatorID,
	).Scan(&id)

	if err != nil {
		// Map unique violations to the domain conflict errors; nothing
		// else from the driver leaks past this layer.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "isbn") {
				return nil, material.ErrISBNAlreadyExists
			}
			if strings.Contains(pgErr.ConstraintName, "doi") {
				return nil, material.ErrDOIAlreadyExists
			}
		}
		return nil, fmt.Errorf("insert material: %w", err)
	}

	return r.findJoined(ctx, id)
}

// FindByID uses cache-aside: material:<id> with a short TTL
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*material.Material, error) {
	cacheKey := fmt.Sprintf("material:%d", id)

	var cached material.Material
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	m, err := r.findJoined(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, m, materialCacheTTL); err != nil {
		// Cache failures are non-critical
		logger.Warn("failed to cache material", err)
	}
	return m, nil
}

func (r *postgresRepository) findJoined(ctx context.Context, id int64) (*material.Material, error) {
	row := r.pool.QueryRow(ctx, joinedSelect+` WHERE m.id = $1`, id)

	m, err := scanMaterial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, material.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("find material: %w", err)
	}
	return m, nil
}

// List returns published materials matching the filters plus a total count.
// Substring filters are case-insensitive (ILIKE); type is an exact match.
func (r *postgresRepository) List(ctx context.Context, req material.ListMaterialsRequest) ([]material.Material, int, error) {
	// The public path is always restricted to published materials
	where := []string{"m.status = 'PUBLICADO'"}
	args := []interface{}{}
	argn := 1

	addFilter := func(clause string, value interface{}) {
		where = append(where, fmt.Sprintf(clause, argn))
		args = append(args, value)
		argn++
	}

	if req.Title != "" {
		addFilter("m.title ILIKE $%d", "%"+req.Title+"%")
	}
	if req.Type != "" {
		addFilter("m.type = $%d", strings.ToUpper(req.Type))
	}
	if req.AuthorName != "" {
		addFilter("a.name ILIKE $%d", "%"+req.AuthorName+"%")
	}
	if req.Description != "" {
		addFilter("m.description ILIKE $%d", "%"+req.Description+"%")
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	// Total count before pagination
	countQuery := `
		SELECT COUNT(*)
		FROM materials m
		JOIN autores a ON a.id = m.author_id
	` + whereClause

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count materials: %w", err)
	}

	query := fmt.Sprintf(
		"%s%s ORDER BY m.created_at DESC, m.id DESC LIMIT $%d OFFSET $%d",
		joinedSelect, whereClause, argn, argn+1,
	)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	materials := []material.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list materials: %w", err)
	}

	return materials, total, nil
}

// Update applies only the supplied fields via COALESCE semantics
func (r *postgresRepository) Update(ctx context.Context, id int64, req material.UpdateMaterialRequest) (*material.Material, error) {
	query := `
		UPDATE materials SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			status      = COALESCE($4, status),
			updated_at  = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, req.Title, req.Description, req.Status)
	if err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, material.ErrMaterialNotFound
	}

	r.invalidate(ctx, id)
	return r.findJoined(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return material.ErrMaterialNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, fmt.Sprintf("material:%d", id)); err != nil {
		logger.Warn("failed to invalidate material cache", err)
	}
}
