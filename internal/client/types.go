package client

// Entity shapes are owned by the backend; the client passes them through
// without interpretation. Rich-text content fields carry opaque HTML.

type Blog struct {
	ID            string   `json:"_id,omitempty"`
	Title         string   `json:"title"`
	Content       string   `json:"content,omitempty"`
	Category      string   `json:"category,omitempty"`
	Author        string   `json:"author,omitempty"`
	ThumbnailURL  string   `json:"thumbnailUrl,omitempty"`
	Images        []string `json:"images,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
}

// BreakingNewsItem is a short-lived ticker entry. The wire field for the
// ticker text is "text"; the legacy edit screen wrote "title" for the same
// value, so both tags survive here. Updates replace the whole item.
type BreakingNewsItem struct {
	ID    string `json:"_id,omitempty"`
	Text  string `json:"text,omitempty"`
	Title string `json:"title,omitempty"`
}

type Podcast struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

type News struct {
	ID            string `json:"_id,omitempty"`
	Title         string `json:"title"`
	Content       string `json:"content,omitempty"`
	Category      string `json:"category,omitempty"`
	State         string `json:"state,omitempty"`
	ImageURL      string `json:"image,omitempty"`
	VideoURL      string `json:"video,omitempty"`
	IsFeatured    bool   `json:"isFeatured,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

type PrivacyPolicy struct {
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
