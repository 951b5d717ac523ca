package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

// SessionRepositorySQLite persists the single local session record in
// SQLite.
type SessionRepositorySQLite struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepositorySQLite(db *DB, log *logger.Logger) *SessionRepositorySQLite {
	return &SessionRepositorySQLite{db: db, logger: log}
}

func (r *SessionRepositorySQLite) Persist(ctx context.Context, user models.Usuario, sesion models.Sesion) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "Persist").Msg("error starting transaction")
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsertUsuario,
		user.IDUS, user.TipoUsuario, user.NumeroCelular, user.Documento, user.Nombre,
	); err != nil {
		r.logger.Err(err).Str("func", "Persist").Msg("error persisting user")
		return fmt.Errorf("error persisting user: %w", err)
	}

	if _, err = tx.ExecContext(ctx, upsertSesion,
		sesion.Token, sesion.ExpiraEn, sesion.CodigoAccesoExpira, sesion.Recordar,
	); err != nil {
		r.logger.Err(err).Str("func", "Persist").Msg("error persisting session")
		return fmt.Errorf("error persisting session: %w", err)
	}

	return tx.Commit()
}

func (r *SessionRepositorySQLite) Load(ctx context.Context) (models.Usuario, models.Sesion, error) {
	var user models.Usuario
	err := r.db.QueryRowContext(ctx, selectUsuario).Scan(
		&user.IDUS, &user.TipoUsuario, &user.NumeroCelular, &user.Documento, &user.Nombre,
	)
	if err != nil {
		// un registro ausente o ilegible vale lo mismo: no hay sesión
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn().Err(err).Str("func", "Load").Msg("unreadable user record, treating as absent")
		}
		return models.Usuario{}, models.Sesion{}, ErrLocalSessionNotFound
	}

	var sesion models.Sesion
	err = r.db.QueryRowContext(ctx, selectSesion).Scan(
		&sesion.Token, &sesion.ExpiraEn, &sesion.CodigoAccesoExpira, &sesion.Recordar,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn().Err(err).Str("func", "Load").Msg("unreadable session record, treating as absent")
		}
		return models.Usuario{}, models.Sesion{}, ErrLocalSessionNotFound
	}

	return user, sesion, nil
}

func (r *SessionRepositorySQLite) UpdateSession(ctx context.Context, sesion models.Sesion) error {
	res, err := r.db.ExecContext(ctx, updateSesion,
		sesion.Token, sesion.ExpiraEn, sesion.CodigoAccesoExpira, sesion.Recordar,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "UpdateSession").Msg("error updating session")
		return fmt.Errorf("error updating session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrLocalSessionNotFound
	}

	return nil
}

func (r *SessionRepositorySQLite) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "Clear").Msg("error starting transaction")
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteSesion); err != nil {
		r.logger.Err(err).Str("func", "Clear").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}
	if _, err = tx.ExecContext(ctx, deleteUsuario); err != nil {
		r.logger.Err(err).Str("func", "Clear").Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	return tx.Commit()
}
