package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied idempotently at startup. The unique constraints on
// organizers.email, guests.email, guests.username and content.key are the
// authoritative guard against duplicate concurrent registrations; the
// application-level existence checks are a fast path only.
const schema = `
CREATE TABLE IF NOT EXISTS organizers (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL,
	name          TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'admin',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT organizers_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS guests (
	id                   BIGSERIAL PRIMARY KEY,
	first_name           TEXT NOT NULL,
	last_name            TEXT NOT NULL,
	email                TEXT NOT NULL,
	phone                TEXT NOT NULL DEFAULT '',
	username             TEXT,
	password_hash        TEXT,
	rsvp_status          TEXT NOT NULL DEFAULT 'pending',
	attendance_type      TEXT NOT NULL DEFAULT '',
	number_of_guests     INT NOT NULL DEFAULT 1,
	dietary_restrictions TEXT NOT NULL DEFAULT '',
	allergies            TEXT NOT NULL DEFAULT '',
	special_requests     TEXT NOT NULL DEFAULT '',
	address              TEXT NOT NULL DEFAULT '',
	notes                TEXT NOT NULL DEFAULT '',
	registered_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_accessed        TIMESTAMPTZ,
	CONSTRAINT guests_email_key UNIQUE (email),
	CONSTRAINT guests_username_key UNIQUE (username)
);

CREATE TABLE IF NOT EXISTS tasks (
	id             BIGSERIAL PRIMARY KEY,
	user_id        BIGINT NOT NULL REFERENCES organizers(id) ON DELETE CASCADE,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	priority       TEXT NOT NULL DEFAULT 'medium',
	status         TEXT NOT NULL DEFAULT 'todo',
	category       TEXT NOT NULL DEFAULT '',
	assigned_to    TEXT NOT NULL DEFAULT '',
	due_date       DATE,
	estimated_cost NUMERIC(10,2),
	actual_cost    NUMERIC(10,2),
	completed_at   TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS tasks_user_id_idx ON tasks (user_id);

CREATE TABLE IF NOT EXISTS costs (
	id           BIGSERIAL PRIMARY KEY,
	user_id      BIGINT NOT NULL REFERENCES organizers(id) ON DELETE CASCADE,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT 'other',
	amount       NUMERIC(10,2) NOT NULL,
	status       TEXT NOT NULL DEFAULT 'planned',
	payment_date DATE,
	vendor       TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS costs_user_id_idx ON costs (user_id);

CREATE TABLE IF NOT EXISTS content (
	id           BIGSERIAL PRIMARY KEY,
	key          TEXT NOT NULL,
	title        TEXT NOT NULL DEFAULT '',
	body         TEXT NOT NULL,
	content_type TEXT NOT NULL DEFAULT 'text',
	is_public    BOOLEAN NOT NULL DEFAULT TRUE,
	"order"      INT NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT content_key_key UNIQUE (key)
);
`

// EnsureSchema creates all tables and indexes when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
