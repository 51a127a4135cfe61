package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/newsdesk-cms/newsdesk/internal/session"
)

// fixture is an in-memory stand-in for the newsdesk backend. It reproduces
// the real API's envelope quirks: blogs and breaking news respond with
// {"data": ...}, the podcast list responds with {"message": [...]}, and
// mutation acknowledgments come back as {"message": "..."}.
type fixture struct {
	mu       sync.Mutex
	blogs    []Blog
	breaking []BreakingNewsItem
	podcasts []Podcast
	news     []News

	// headers seen by the most recent request, keyed by header name
	lastAuth        string
	lastAuthSet     bool
	lastContentType string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fixture) recordHeaders(r *http.Request) {
	f.lastAuth = r.Header.Get("Authorization")
	_, f.lastAuthSet = r.Header["Authorization"]
	f.lastContentType = r.Header.Get("Content-Type")
}

// nonNil keeps empty collections encoding as [] rather than null, the way
// the real backend serializes them.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (f *fixture) router() http.Handler {
	r := chi.NewRouter()

	r.Post("/super-admin/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var creds LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&creds)

		if creds.Email == "admin@newsdesk.example" && creds.Password == "letmein" {
			writeJSON(w, http.StatusOK, map[string]any{
				"status":  true,
				"message": "login successful",
				"data": map[string]any{
					"_token": "fixture-token",
					"name":   "Desk Admin",
					"email":  creds.Email,
					"roles":  []string{"super-admin", "editor"},
				},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  false,
			"message": "invalid credentials",
		})
	})

	r.Get("/super-admin/utility/privacy", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		f.recordHeaders(req)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{
			"data": PrivacyPolicy{Title: "Privacy Policy", Content: "We keep nothing."},
		})
	})

	r.Get("/blogs", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.recordHeaders(req)
		writeJSON(w, http.StatusOK, map[string]any{"data": nonNil(f.blogs)})
	})

	r.Get("/blogs/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, b := range f.blogs {
			if b.ID == chi.URLParam(req, "id") {
				writeJSON(w, http.StatusOK, map[string]any{"data": b})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "blog not found"})
	})

	r.Post("/createblogs", func(w http.ResponseWriter, req *http.Request) {
		var blog Blog
		_ = json.NewDecoder(req.Body).Decode(&blog)
		blog.ID = uuid.NewString()
		f.mu.Lock()
		f.blogs = append(f.blogs, blog)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"message": "blog created"})
	})

	r.Put("/update/blogs/{id}", func(w http.ResponseWriter, req *http.Request) {
		var blog Blog
		_ = json.NewDecoder(req.Body).Decode(&blog)
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.blogs {
			if f.blogs[i].ID == id {
				blog.ID = id
				f.blogs[i] = blog
				// nested ack shape, as the real blog endpoints emit
				writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"message": "blog updated"}})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "blog not found"})
	})

	r.Delete("/blogs/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.blogs {
			if f.blogs[i].ID == id {
				f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]any{"message": "blog deleted"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "blog not found"})
	})

	r.Get("/getbreakingnews", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.recordHeaders(req)
		writeJSON(w, http.StatusOK, map[string]any{"data": nonNil(f.breaking)})
	})

	r.Post("/createbreakingnews", func(w http.ResponseWriter, req *http.Request) {
		var item BreakingNewsItem
		_ = json.NewDecoder(req.Body).Decode(&item)
		item.ID = uuid.NewString()
		f.mu.Lock()
		f.breaking = append(f.breaking, item)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"message": "breaking news created"})
	})

	r.Put("/updatedbreakingnews/{id}", func(w http.ResponseWriter, req *http.Request) {
		var item BreakingNewsItem
		_ = json.NewDecoder(req.Body).Decode(&item)
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.breaking {
			if f.breaking[i].ID == id {
				item.ID = id
				f.breaking[i] = item
				writeJSON(w, http.StatusOK, map[string]any{"message": fmt.Sprintf("updated to %q", item.Text)})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "breaking news not found"})
	})

	r.Delete("/deletebreakingnews/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.breaking {
			if f.breaking[i].ID == id {
				f.breaking = append(f.breaking[:i], f.breaking[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]any{"message": "breaking news deleted"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "breaking news not found"})
	})

	r.Get("/getallpodcast", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.recordHeaders(req)
		// payload rides in the message field on this endpoint
		writeJSON(w, http.StatusOK, map[string]any{"message": nonNil(f.podcasts)})
	})

	r.Get("/podcast/{id}", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, p := range f.podcasts {
			if p.ID == chi.URLParam(req, "id") {
				writeJSON(w, http.StatusOK, map[string]any{"data": p})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "podcast not found"})
	})

	r.Post("/createpodcast", func(w http.ResponseWriter, req *http.Request) {
		var podcast Podcast
		_ = json.NewDecoder(req.Body).Decode(&podcast)
		podcast.ID = uuid.NewString()
		f.mu.Lock()
		f.podcasts = append(f.podcasts, podcast)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"message": "podcast created"})
	})

	r.Patch("/updatepodcast/{id}", func(w http.ResponseWriter, req *http.Request) {
		var podcast Podcast
		_ = json.NewDecoder(req.Body).Decode(&podcast)
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.podcasts {
			if f.podcasts[i].ID == id {
				podcast.ID = id
				f.podcasts[i] = podcast
				writeJSON(w, http.StatusOK, map[string]any{"message": "podcast updated"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "podcast not found"})
	})

	r.Delete("/deletepodcast/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.podcasts {
			if f.podcasts[i].ID == id {
				f.podcasts = append(f.podcasts[:i], f.podcasts[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]any{"message": "podcast deleted"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "podcast not found"})
	})

	r.Post("/api/news/createNews", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseMultipartForm(32 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "expected multipart form"})
			return
		}
		article := News{
			ID:            uuid.NewString(),
			Title:         req.FormValue("title"),
			Content:       req.FormValue("content"),
			Category:      req.FormValue("category"),
			PublishedDate: req.FormValue("publishedDate"),
			IsFeatured:    req.FormValue("isFeatured") == "true",
		}
		if file, header, err := req.FormFile("image"); err == nil {
			article.ImageURL = "/uploads/" + header.Filename
			file.Close()
		}
		f.mu.Lock()
		f.recordHeaders(req)
		f.news = append(f.news, article)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"message": "news created"})
	})

	r.Get("/api/news/News", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"data": nonNil(f.news)})
	})

	r.Delete("/api/news/deleteNews/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.news {
			if f.news[i].ID == id {
				f.news = append(f.news[:i], f.news[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]any{"message": "news deleted"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "news not found"})
	})

	return r
}

// newTestClient spins up the fixture backend and a client over a fresh
// in-memory session store.
func newTestClient(t *testing.T, opts ...Option) (*Client, *fixture, *session.MemStore) {
	t.Helper()

	f := &fixture{}
	server := httptest.NewServer(f.router())
	t.Cleanup(server.Close)

	store := session.NewMemStore()
	return New(server.URL, store, opts...), f, store
}
