package store

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite драйвер
)

// Store - контракт хранилища сессий и закладок: значения - непрозрачные JSON-блобы по ключу.
// Используемые ключи: "users", "savedCredentials", "currentUser", "posts", "feedback"
// и "bookmarks_<email>" для коллекций закладок.
type Store interface {
	// Get возвращает значение по ключу; второй результат - false, если ключ отсутствует.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// SQLiteStore реализует Store поверх локального файла SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// Open открывает (или создает) файл хранилища и инициализирует схему.
func Open(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть хранилище: %w", err)
	}
	// SQLite лучше работает при сериализованном доступе
	db.SetMaxOpenConns(1)
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS announce_subscriptions (
			chat_id INTEGER PRIMARY KEY
		);
	`)
	if err != nil {
		return fmt.Errorf("не удалось инициализировать схему хранилища: %w", err)
	}
	return nil
}

// DB возвращает нижележащее соединение для табличных репозиториев (подписки бота).
func (s *SQLiteStore) DB() *sqlx.DB {
	return s.db
}

// Close закрывает файл хранилища.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get возвращает JSON-блоб по ключу.
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM kv WHERE key=?", key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("не удалось прочитать ключ %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set записывает JSON-блоб по ключу, заменяя прежнее значение.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
		key, string(value))
	if err != nil {
		return fmt.Errorf("не удалось записать ключ %q: %w", key, err)
	}
	return nil
}

// Remove удаляет ключ; отсутствие ключа не считается ошибкой.
func (s *SQLiteStore) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key=?", key)
	if err != nil {
		return fmt.Errorf("не удалось удалить ключ %q: %w", key, err)
	}
	return nil
}
