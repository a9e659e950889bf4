package planka

import "context"

// DefaultBoardRole is the role assigned when none is specified.
const DefaultBoardRole = "editor"

// AddCardMember assigns a user to a card.
func (c *Client) AddCardMember(ctx context.Context, cardID, userID string) (Item, error) {
	return c.postItem(ctx, "/api/cards/"+cardID+"/card-memberships", map[string]any{
		"userId": userID,
	})
}

// RemoveCardMember unassigns a user from a card. The association is
// addressed by userId, not by a membership ID.
func (c *Client) RemoveCardMember(ctx context.Context, cardID, userID string) error {
	return c.delete(ctx, "/api/cards/"+cardID+"/card-memberships/userId:"+userID)
}

// AddBoardMember adds a user to a board with the given role. An empty
// role means DefaultBoardRole.
func (c *Client) AddBoardMember(ctx context.Context, boardID, userID, role string) (Item, error) {
	if role == "" {
		role = DefaultBoardRole
	}
	return c.postItem(ctx, "/api/boards/"+boardID+"/board-memberships", map[string]any{
		"userId": userID,
		"role":   role,
	})
}

// BoardMembershipUpdate holds the optional fields of a board
// membership update.
type BoardMembershipUpdate struct {
	Role       *string `json:"role,omitempty"`
	CanComment *bool   `json:"canComment,omitempty"`
}

// UpdateBoardMembership patches a board membership with only the
// fields set in upd. Unlike card memberships, board memberships are
// addressed by their own ID.
func (c *Client) UpdateBoardMembership(ctx context.Context, membershipID string, upd BoardMembershipUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/board-memberships/"+membershipID, upd)
}

// RemoveBoardMembership removes a board membership by its ID.
func (c *Client) RemoveBoardMembership(ctx context.Context, membershipID string) error {
	return c.delete(ctx, "/api/board-memberships/"+membershipID)
}
