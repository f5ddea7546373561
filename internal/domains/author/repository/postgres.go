package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		INSERT INTO autores (name, type, data_nascimento, cidade, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		a.Name,
		a.Type,
		a.DataNascimento,
		a.Cidade,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
		SELECT id, name, type, data_nascimento, cidade, created_at
		FROM autores
		WHERE id = $1
	`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.DataNascimento,
		&a.Cidade,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	return &a, nil
}
