package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    key       TEXT PRIMARY KEY,
    value     TEXT NOT NULL,
    saved_at  TEXT NOT NULL
);
`
