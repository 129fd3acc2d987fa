package queries

import (
	"time"

	"postboard/application/ports"
	"postboard/domain/core/entities"
)

// PostView is a post as shown to one viewer
type PostView struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	CreatedAt     time.Time        `json:"createdAt"`
	Author        *entities.Author `json:"author"`
	LikesCount    int              `json:"likesCount"`
	LikedByViewer bool             `json:"likedByViewer"`
}

// PostFeed is one page of post views. NextCursor is null when the page is empty.
type PostFeed struct {
	Items      []PostView `json:"items"`
	NextCursor *string    `json:"nextCursor"`
}

// PostViewAssembler joins a post with its author and like state
type PostViewAssembler struct {
	users ports.UserRepository
	likes ports.LikeRepository
}

// NewPostViewAssembler creates a new assembler
func NewPostViewAssembler(users ports.UserRepository, likes ports.LikeRepository) *PostViewAssembler {
	return &PostViewAssembler{users: users, likes: likes}
}

// View builds the view of post for viewerID. A dangling author reference gives a nil Author.
func (a *PostViewAssembler) View(post entities.Post, viewerID string) PostView {
	view := PostView{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		CreatedAt:     post.CreatedAt,
		LikesCount:    a.likes.CountLikes(post.ID),
		LikedByViewer: a.likes.HasUserLiked(viewerID, post.ID),
	}
	if author, ok := a.users.GetUserByID(post.AuthorID); ok {
		view.Author = author.Summary()
	}
	return view
}

// Feed builds views for every post in page, keeping its cursor
func (a *PostViewAssembler) Feed(page entities.PostPage, viewerID string) PostFeed {
	feed := PostFeed{
		Items:      make([]PostView, 0, len(page.Items)),
		NextCursor: page.NextCursor,
	}
	for _, post := range page.Items {
		feed.Items = append(feed.Items, a.View(post, viewerID))
	}
	return feed
}
