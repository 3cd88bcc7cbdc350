package integration_testing

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "127.0.0.1"

	testDBName = "gzclp"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

func redisSetup(pool *dockertest.Pool) (string, func(), error) {
	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "gzclp-test-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", nil, fmt.Errorf("run redis: %s", err)
	}

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, func() {
		if err := redisResource.Close(); err != nil {
			log.Printf("close redis resource: %s", err)
		}
	}, nil
}

func postgresSetup(pool *dockertest.Pool) (string, *sql.DB, func(), error) {
	pgResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", nil, nil, fmt.Errorf("dockerpool run postgres: %s", err)
	}

	teardown := func() {
		if err := pgResource.Close(); err != nil {
			log.Printf("close postgres resource: %s", err)
		}
	}

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)

	var db *sql.DB
	// the container needs a moment to accept connections
	if err := pool.Retry(func() error {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		teardown()
		return "", nil, nil, fmt.Errorf("connect to postgres: %s", err)
	}

	if _, err := db.Exec(initSQL); err != nil {
		teardown()
		return "", nil, nil, fmt.Errorf("run init script: %s", err)
	}

	return pgPort, db, teardown, nil
}

const initSQL = `
CREATE TABLE public.exercise
(
    id                   VARCHAR PRIMARY KEY,
    external_template_id VARCHAR NOT NULL,
    name                 VARCHAR NOT NULL,
    role                 VARCHAR NOT NULL DEFAULT '',
    muscle_group         VARCHAR NOT NULL DEFAULT '',
    custom_increment     DOUBLE PRECISION
);

CREATE TABLE public.program_settings
(
    id                 INTEGER PRIMARY KEY,
    unit               VARCHAR NOT NULL,
    active_day         INTEGER NOT NULL DEFAULT 0,
    auto_apply_changes BOOLEAN NOT NULL DEFAULT FALSE,
    routine_to_day     JSONB
);

CREATE TABLE public.progression_entry
(
    progression_key    VARCHAR PRIMARY KEY,
    linked_exercise_id VARCHAR          NOT NULL,
    current_weight     DOUBLE PRECISION NOT NULL,
    stage              INTEGER          NOT NULL,
    base_weight        DOUBLE PRECISION NOT NULL,
    amrap_record       INTEGER          NOT NULL DEFAULT 0,
    amrap_record_date  TIMESTAMPTZ,
    last_workout_id    VARCHAR          NOT NULL DEFAULT '',
    last_workout_date  TIMESTAMPTZ
);

CREATE TABLE public.pending_change
(
    id              VARCHAR PRIMARY KEY,
    progression_key VARCHAR          NOT NULL,
    exercise_id     VARCHAR          NOT NULL,
    tier            VARCHAR          NOT NULL,
    change_type     VARCHAR          NOT NULL,
    status          VARCHAR          NOT NULL DEFAULT 'pending',
    current_weight  DOUBLE PRECISION NOT NULL,
    new_weight      DOUBLE PRECISION NOT NULL,
    current_stage   INTEGER          NOT NULL,
    new_stage       INTEGER          NOT NULL,
    reason          VARCHAR          NOT NULL DEFAULT '',
    amrap_reps      INTEGER,
    discrepancy     JSONB,
    workout_id      VARCHAR          NOT NULL,
    workout_date    TIMESTAMPTZ      NOT NULL,
    created_at      TIMESTAMPTZ      NOT NULL
);

CREATE INDEX ix_pending_change_status ON public.pending_change (status);

CREATE TABLE public.sync_state
(
    id                INTEGER PRIMARY KEY,
    last_sync_at      TIMESTAMPTZ,
    last_status       VARCHAR NOT NULL DEFAULT '',
    last_error        VARCHAR NOT NULL DEFAULT '',
    workouts_analyzed INTEGER NOT NULL DEFAULT 0,
    changes_created   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE public.progression_history
(
    progression_key VARCHAR          NOT NULL,
    exercise_id     VARCHAR          NOT NULL,
    exercise_name   VARCHAR          NOT NULL DEFAULT '',
    tier            VARCHAR          NOT NULL,
    change_type     VARCHAR          NOT NULL,
    old_weight      DOUBLE PRECISION NOT NULL,
    new_weight      DOUBLE PRECISION NOT NULL,
    old_stage       INTEGER          NOT NULL,
    new_stage       INTEGER          NOT NULL,
    amrap_reps      INTEGER,
    workout_id      VARCHAR          NOT NULL,
    workout_date    TIMESTAMPTZ      NOT NULL,
    recorded_at     TIMESTAMPTZ      NOT NULL,
    PRIMARY KEY (progression_key, workout_id)
);

CREATE INDEX ix_progression_history_workout_date ON public.progression_history (workout_date);
`
