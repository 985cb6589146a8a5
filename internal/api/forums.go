package api

import (
	"context"
	"net/url"
	"strconv"
)

// ForumPost is a community forum post.
type ForumPost struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	AuthorID      string   `json:"author_id"`
	AuthorName    string   `json:"author_name"`
	AuthorType    string   `json:"author_type"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
	Likes         int      `json:"likes"`
	CommentsCount int      `json:"comments_count"`
}

// CreateForumPostRequest is the payload for a new forum post.
type CreateForumPostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Comment is a reply on a forum post.
type Comment struct {
	ID         string `json:"id"`
	PostID     string `json:"post_id"`
	Content    string `json:"content"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
}

// ListForumPostsOptions filters the forum listing.
type ListForumPostsOptions struct {
	Category string
	Tag      string
	Search   string
	Limit    int
}

func (o ListForumPostsOptions) values() url.Values {
	q := url.Values{}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Tag != "" {
		q.Set("tag", o.Tag)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// CreateForumPost publishes a new forum post.
func (c *Client) CreateForumPost(ctx context.Context, req CreateForumPostRequest) (*ForumPost, error) {
	if req.Tags == nil {
		req.Tags = []string{}
	}

	var post ForumPost
	if err := c.post(ctx, "/forums/", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListForumPosts returns forum posts matching opts.
func (c *Client) ListForumPosts(ctx context.Context, opts ListForumPostsOptions) ([]ForumPost, error) {
	var posts []ForumPost
	if err := c.get(ctx, "/forums/", opts.values(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetForumPost returns a single post by ID.
func (c *Client) GetForumPost(ctx context.Context, postID string) (*ForumPost, error) {
	var post ForumPost
	if err := c.get(ctx, "/forums/"+postID, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// LikeForumPost records a like on a post.
func (c *Client) LikeForumPost(ctx context.Context, postID string) error {
	return c.post(ctx, "/forums/"+postID+"/like", nil, nil)
}

// CreateComment replies to a post.
func (c *Client) CreateComment(ctx context.Context, postID, content string) (*Comment, error) {
	req := map[string]string{"content": content}

	var comment Comment
	if err := c.post(ctx, "/forums/"+postID+"/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the comments on a post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var comments []Comment
	if err := c.get(ctx, "/forums/"+postID+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
