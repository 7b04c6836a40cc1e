package entity

import "slices"

// ChatRole distinguishes the two sides of a title conversation.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation kept by the client.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// TitleContext is the slice of catalog data the assistant is allowed to talk about.
type TitleContext struct {
	Title       string
	Overview    string
	ReleaseDate string
	Genres      []string
	Cast        []string
	Director    string
	MediaType   MediaKind
	Rating      float64
}

// HasGenre reports whether the title is tagged with genre.
func (t *TitleContext) HasGenre(genre string) bool {
	return slices.Contains(t.Genres, genre)
}
