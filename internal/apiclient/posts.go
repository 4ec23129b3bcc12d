package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/ports"
)

const defaultPageSize = 20

var _ ports.FeedAPI = (*Client)(nil)

// ListPosts returns one page of the community feed.
func (c *Client) ListPosts(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if opts.Cursor != "" {
		q.Set("cursor", opts.Cursor)
	}
	var page model.PostPage
	err := c.get(ctx, "/posts", q, &page)
	return page, err
}

func (c *Client) CreatePost(ctx context.Context, req model.CreatePostRequest) (model.Post, error) {
	if req.MediaURLs == nil {
		req.MediaURLs = []string{}
	}
	var p model.Post
	err := c.post(ctx, "/posts", req, &p)
	return p, err
}

func (c *Client) GetPost(ctx context.Context, id string) (model.Post, error) {
	var p model.Post
	err := c.get(ctx, postPath(id), nil, &p)
	return p, err
}

func (c *Client) AddComment(ctx context.Context, postID string, req model.CreateCommentRequest) (model.Comment, error) {
	var cm model.Comment
	err := c.post(ctx, postPath(postID)+"/comments", req, &cm)
	return cm, err
}

func (c *Client) LikePost(ctx context.Context, postID string) error {
	return c.post(ctx, postPath(postID)+"/like", nil, nil)
}

func (c *Client) UnlikePost(ctx context.Context, postID string) error {
	return c.del(ctx, postPath(postID)+"/like")
}

func postPath(id string) string { return "/posts/" + url.PathEscape(id) }
