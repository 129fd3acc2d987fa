package commands

import (
	"postboard/pkg/errors"
	"postboard/pkg/utils"
)

// Like actions, also used as metric labels
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

// LikePostCommand records that a user likes a post
type LikePostCommand struct {
	UserID string `json:"userId" validate:"required"`
	PostID string `json:"postId" validate:"required"`
}

// Validate validates the LikePostCommand
func (c LikePostCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// UnlikePostCommand removes a user's like from a post
type UnlikePostCommand struct {
	UserID string `json:"userId" validate:"required"`
	PostID string `json:"postId" validate:"required"`
}

// Validate validates the UnlikePostCommand
func (c UnlikePostCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
