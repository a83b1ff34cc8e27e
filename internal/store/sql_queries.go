package store

// Parameterised statements shared by both backends use ordered $N
// placeholders, which PostgreSQL and SQLite both bind positionally.
const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createPhoto = `INSERT INTO photos (photo_id, name, data, caption)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at;`

	photoExists = `SELECT EXISTS(SELECT 1 FROM photos WHERE photo_id = $1);`
)

// PostgreSQL-only mutations. Each statement appends to (or trims) the jsonb
// sub-collection in a single UPDATE, so concurrent callers cannot overwrite
// each other's changes the way a read-modify-write cycle would.
const (
	addLike = `UPDATE photos
    SET likes = likes || to_jsonb($2::text)
    WHERE photo_id = $1;`

	// removeLike deletes the element at the index of the first occurrence
	// of the username. The @> guard keeps the statement a no-op (zero rows)
	// when the username is absent.
	removeLike = `UPDATE photos
    SET likes = likes - (
        SELECT (t.idx - 1)::int
        FROM jsonb_array_elements_text(likes) WITH ORDINALITY AS t(elem, idx)
        WHERE t.elem = $2
        ORDER BY t.idx
        LIMIT 1
    )
    WHERE photo_id = $1 AND likes @> to_jsonb($2::text);`

	addComment = `UPDATE photos
    SET comments = comments || $2::jsonb
    WHERE photo_id = $1;`
)

// SQLite variants. The like/comment collections live in TEXT columns holding
// JSON arrays; mutations are read-modify-write cycles executed inside a
// transaction (SQLite serializes writers, which keeps the cycle atomic).
const (
	getPhotoLikesSQLite = `SELECT likes FROM photos WHERE photo_id = $1;`

	setPhotoLikesSQLite = `UPDATE photos SET likes = $1 WHERE photo_id = $2;`

	getPhotoCommentsSQLite = `SELECT comments FROM photos WHERE photo_id = $1;`

	setPhotoCommentsSQLite = `UPDATE photos SET comments = $1 WHERE photo_id = $2;`

	createUsersTableSQLite = `CREATE TABLE IF NOT EXISTS users (
    user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

	createPhotosTableSQLite = `CREATE TABLE IF NOT EXISTS photos (
    photo_id   TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    data       BLOB,
    caption    TEXT NOT NULL DEFAULT '',
    likes      TEXT NOT NULL DEFAULT '[]',
    comments   TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
)
