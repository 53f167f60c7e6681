// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FriendshipStatus is the lifecycle state of a friendship or share.
type FriendshipStatus string

const (
	StatusPending  FriendshipStatus = "pending"
	StatusAccepted FriendshipStatus = "accepted"
)

// Profile is the public part of a backend user.
type Profile struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`
}

// Friendship connects a requester and a receiver. Once accepted it is
// treated as undirected.
type Friendship struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requester_id"`
	ReceiverID  string           `json:"receiver_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`

	// Requester and Receiver are joined profiles; either may be nil when the
	// backend did not embed them.
	Requester *Profile `json:"requester,omitempty"`
	Receiver  *Profile `json:"receiver,omitempty"`
}

// Other returns the id of the side of the friendship that is not userID.
func (f Friendship) Other(userID string) string {
	if f.RequesterID == userID {
		return f.ReceiverID
	}
	return f.RequesterID
}

// OtherProfile returns the joined profile of the side that is not userID.
func (f Friendship) OtherProfile(userID string) *Profile {
	if f.RequesterID == userID {
		return f.Receiver
	}
	return f.Requester
}

// Friend is a flattened accepted friendship as shown in the friends list.
type Friend struct {
	FriendshipID string  `json:"friendship_id"`
	Profile      Profile `json:"profile"`
}

// Key returns the identifier used by the optimistic list.
func (f Friend) Key() string {
	return f.FriendshipID
}

// SocialOverview is everything the friends tab shows at once.
type SocialOverview struct {
	Profile  *Profile         `json:"profile,omitempty"`
	Friends  []Friend         `json:"friends"`
	Requests []Friendship     `json:"requests"`
	Shares   []SharedInstance `json:"shares"`
}
