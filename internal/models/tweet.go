package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Tweet представляет твит в ленте.
// Likes хранит ID пользователей, поставивших лайк; пустое множество всегда nil.
type Tweet struct {
	Image    *bool    `json:"image,omitempty"`
	ID       string   `json:"_id"`
	Text     string   `json:"text"`
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	User     string   `json:"user"` // отображаемое имя автора
	Likes    []string `json:"likes,omitempty"`
}

// tweetAuthor описывает populated-форму поля userId
type tweetAuthor struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// UnmarshalJSON поддерживает обе формы userId, которые отдает сервер:
// строку с ID и вложенный объект {_id, name, username}.
func (t *Tweet) UnmarshalJSON(data []byte) error {
	var raw struct {
		Image    *bool           `json:"image"`
		ID       string          `json:"_id"`
		Text     string          `json:"text"`
		Username string          `json:"username"`
		User     string          `json:"user"`
		UserID   json.RawMessage `json:"userId"`
		Likes    []string        `json:"likes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		return fmt.Errorf("tweet: missing _id")
	}

	*t = Tweet{
		ID:       raw.ID,
		Text:     raw.Text,
		Username: raw.Username,
		User:     raw.User,
		Image:    raw.Image,
		Likes:    normalizeLikes(raw.Likes),
	}

	userID := bytes.TrimSpace(raw.UserID)
	switch {
	case len(userID) == 0 || bytes.Equal(userID, []byte("null")):
		return fmt.Errorf("tweet %s: missing userId", raw.ID)
	case userID[0] == '{':
		var author tweetAuthor
		if err := json.Unmarshal(userID, &author); err != nil {
			return fmt.Errorf("tweet %s: invalid userId object: %w", raw.ID, err)
		}
		t.UserID = author.ID
		t.User = author.Name
		t.Username = author.Username
	default:
		if err := json.Unmarshal(userID, &t.UserID); err != nil {
			return fmt.Errorf("tweet %s: invalid userId: %w", raw.ID, err)
		}
	}

	return nil
}

// Clone возвращает глубокую копию твита
func (t Tweet) Clone() Tweet {
	cp := t
	cp.Likes = slices.Clone(t.Likes)
	if t.Image != nil {
		img := *t.Image
		cp.Image = &img
	}
	return cp
}

// IsLikedBy проверяет, входит ли пользователь в множество лайкнувших
func (t Tweet) IsLikedBy(userID string) bool {
	return slices.Contains(t.Likes, userID)
}

// LikesCount возвращает количество лайков
func (t Tweet) LikesCount() int {
	return len(t.Likes)
}

// AddLiker возвращает дельту "добавить userID в множество лайкнувших, если его там нет".
// RemoveLiker обращает ее только для твита без лайка userID, см. LikePlan.
func AddLiker(userID string) func(Tweet) Tweet {
	return func(t Tweet) Tweet {
		cp := t.Clone()
		if !cp.IsLikedBy(userID) {
			cp.Likes = append(cp.Likes, userID)
		}
		return cp
	}
}

// RemoveLiker возвращает дельту "убрать userID из множества лайкнувших".
// Порядок остальных элементов сохраняется.
func RemoveLiker(userID string) func(Tweet) Tweet {
	return func(t Tweet) Tweet {
		cp := t.Clone()
		cp.Likes = normalizeLikes(slices.DeleteFunc(cp.Likes, func(id string) bool {
			return id == userID
		}))
		return cp
	}
}

// LikePlan строит дельты лайка по состоянию твита на момент старта.
// Если пользователь уже лайкнул, обе дельты ничего не меняют, и откат не снимет
// подтвержденный сервером лайк.
func LikePlan(userID string) func(Tweet) (forward, inverse func(Tweet) Tweet) {
	return func(t Tweet) (func(Tweet) Tweet, func(Tweet) Tweet) {
		if t.IsLikedBy(userID) {
			return keepTweet, keepTweet
		}
		return AddLiker(userID), RemoveLiker(userID)
	}
}

// UnlikePlan зеркален LikePlan: без лайка пользователя дельты пустые
func UnlikePlan(userID string) func(Tweet) (forward, inverse func(Tweet) Tweet) {
	return func(t Tweet) (func(Tweet) Tweet, func(Tweet) Tweet) {
		at := slices.Index(t.Likes, userID)
		if at < 0 {
			return keepTweet, keepTweet
		}
		return RemoveLiker(userID), insertLiker(userID, at)
	}
}

// insertLiker возвращает лайк на прежнюю позицию, если его там еще нет
func insertLiker(userID string, at int) func(Tweet) Tweet {
	return func(t Tweet) Tweet {
		cp := t.Clone()
		if cp.IsLikedBy(userID) {
			return cp
		}
		cp.Likes = slices.Insert(cp.Likes, min(at, len(cp.Likes)), userID)
		return cp
	}
}

func keepTweet(t Tweet) Tweet {
	return t.Clone()
}

func normalizeLikes(likes []string) []string {
	if len(likes) == 0 {
		return nil
	}
	return likes
}
