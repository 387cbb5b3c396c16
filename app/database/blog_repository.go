package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLBlogRepository is the SQLite-backed BlogRepository.
type SQLBlogRepository struct {
	db *DB
}

var _ BlogRepository = (*SQLBlogRepository)(nil)

func NewSQLBlogRepository(db *DB) *SQLBlogRepository {
	return &SQLBlogRepository{db: db}
}

const blogPostColumns = `id, external_id, title, slug, content, excerpt, author,
	published_at, image_url, tags, last_fetched, created_at, updated_at`

func (r *SQLBlogRepository) GetPostBySlug(slug string) (*BlogPost, error) {
	row := r.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = ?`, slug)
	return scanPost(row)
}

func (r *SQLBlogRepository) GetPostByID(id int64) (*BlogPost, error) {
	row := r.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = ?`, id)
	return scanPost(row)
}

func (r *SQLBlogRepository) CreatePost(post BlogPost) (*BlogPost, error) {
	tags, err := encodeTags(post.Tags)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(`
		INSERT INTO blog_posts (
			external_id, title, slug, content, excerpt, author,
			published_at, image_url, tags, last_fetched
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, post.ExternalID, post.Title, post.Slug, post.Content, post.Excerpt,
		post.Author, post.PublishedAt, post.ImageURL, tags, post.LastFetched)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get post id: %w", err)
	}

	return r.GetPostByID(id)
}

// UpdatePost overwrites the mutable fields of an existing post.
// external_id and slug are never touched. Returns (nil, nil) when the id
// does not exist.
func (r *SQLBlogRepository) UpdatePost(id int64, update PostUpdate) (*BlogPost, error) {
	tags, err := encodeTags(update.Tags)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(`
		UPDATE blog_posts
		SET title = ?, content = ?, excerpt = ?, author = ?, published_at = ?,
		    image_url = ?, tags = ?, last_fetched = ?, updated_at = ?
		WHERE id = ?
	`, update.Title, update.Content, update.Excerpt, update.Author,
		update.PublishedAt, update.ImageURL, tags, update.LastFetched,
		time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetPostByID(id)
}

func (r *SQLBlogRepository) DeletePost(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return affected > 0, nil
}

func (r *SQLBlogRepository) ListPosts() ([]BlogPost, error) {
	rows, err := r.db.Query(`SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY published_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		post, err := scanPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row *sql.Row) (*BlogPost, error) {
	post, err := scanPostRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return post, err
}

func scanPostRow(row rowScanner) (*BlogPost, error) {
	var post BlogPost
	var tags string

	err := row.Scan(
		&post.ID, &post.ExternalID, &post.Title, &post.Slug, &post.Content,
		&post.Excerpt, &post.Author, &post.PublishedAt, &post.ImageURL,
		&tags, &post.LastFetched, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &post.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	return &post, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}

	return string(data), nil
}
