package newsControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/arslan020/techxchange/logger"
)

const devToBase = "https://dev.to/api/articles"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// allow ASCII letters, digits, spaces and common punctuation
var englishPattern = regexp.MustCompile(`^[\x00-\x7F\s.,;:!?'"()\-–—%&/0-9]+$`)

type devToUser struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image"`
}

type devToArticle struct {
	ID                  int             `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	BodyMarkdown        string          `json:"body_markdown"`
	URL                 string          `json:"url"`
	CanonicalURL        string          `json:"canonical_url"`
	CoverImage          string          `json:"cover_image"`
	SocialImage         string          `json:"social_image"`
	TagList             json.RawMessage `json:"tag_list"` // array on list, CSV string on detail
	PublishedAt         string          `json:"published_at"`
	ReadablePublishDate string          `json:"readable_publish_date"`
	User                *devToUser      `json:"user"`
}

type NewsAuthor struct {
	Name         string `json:"name"`
	Username     string `json:"username,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type NewsItem struct {
	ID                  int        `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	BodyMarkdown        string     `json:"body_markdown,omitempty"`
	URL                 string     `json:"url"`
	CanonicalURL        string     `json:"canonical_url,omitempty"`
	CoverImage          string     `json:"cover_image"`
	Tags                []string   `json:"tags"`
	PublishedAt         string     `json:"published_at,omitempty"`
	ReadablePublishDate string     `json:"readable_publish_date,omitempty"`
	Author              NewsAuthor `json:"author"`
}

type NewsList struct {
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Items   []NewsItem `json:"items"`
}

func isLikelyEnglish(text string) bool {
	return text != "" && englishPattern.MatchString(text)
}

func parseTags(raw json.RawMessage) []string {
	tags := []string{}
	if len(raw) == 0 {
		return tags
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var csv string
	if err := json.Unmarshal(raw, &csv); err == nil {
		for _, t := range regexp.MustCompile(`\s*,\s*`).Split(csv, -1) {
			if t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func normalize(a devToArticle) NewsItem {
	cover := a.CoverImage
	if cover == "" {
		cover = a.SocialImage
	}
	author := NewsAuthor{Name: "Author"}
	if a.User != nil {
		author.Username = a.User.Username
		author.ProfileImage = a.User.ProfileImage
		if a.User.Name != "" {
			author.Name = a.User.Name
		} else if a.User.Username != "" {
			author.Name = a.User.Username
		}
	}
	return NewsItem{
		ID:                  a.ID,
		Title:               a.Title,
		Description:         a.Description,
		BodyMarkdown:        a.BodyMarkdown,
		URL:                 a.URL,
		CanonicalURL:        a.CanonicalURL,
		CoverImage:          cover,
		Tags:                parseTags(a.TagList),
		PublishedAt:         a.PublishedAt,
		ReadablePublishDate: a.ReadablePublishDate,
		Author:              author,
	}
}

func cacheKey(upstream string) string {
	return "news:" + upstream
}

// cacheGet is best-effort: a broken redis degrades to cache misses.
func cacheGet(c *gin.Context, rdb *redis.Client, log *logger.Logger, key string) bool {
	data, err := rdb.Get(c.Request.Context(), key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn("news cache read failed", "err", err)
		}
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	return true
}

func cacheSet(c *gin.Context, rdb *redis.Client, log *logger.Logger, key string, data []byte, ttl time.Duration) {
	if err := rdb.Set(c.Request.Context(), key, data, ttl).Err(); err != nil {
		log.Warn("news cache write failed", "err", err)
	}
}

func fetchUpstream(upstream string) ([]byte, int, error) {
	req, err := http.NewRequest(http.MethodGet, upstream, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// GET /api/news?page=1&per_page=10&tag=technology
func ListNews(rdb *redis.Client, log *logger.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
		if perPage < 1 {
			perPage = 1
		}
		if perPage > 30 {
			perPage = 30
		}
		tag := c.DefaultQuery("tag", "technology")

		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("tag", tag)
		upstream := devToBase + "?" + params.Encode()

		key := cacheKey(upstream)
		if cacheGet(c, rdb, log, key) {
			return
		}

		body, status, err := fetchUpstream(upstream)
		if err != nil {
			log.Error("news upstream fetch failed", "err", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch news"})
			return
		}
		if status != http.StatusOK {
			c.JSON(status, gin.H{"error": fmt.Sprintf("Upstream DEV.to %d", status)})
			return
		}

		var articles []devToArticle
		if err := json.Unmarshal(body, &articles); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch news"})
			return
		}

		items := []NewsItem{}
		for _, a := range articles {
			item := normalize(a)
			if isLikelyEnglish(item.Title) || isLikelyEnglish(item.Description) {
				items = append(items, item)
			}
		}

		data, err := json.Marshal(NewsList{Page: page, PerPage: perPage, Items: items})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode news"})
			return
		}
		cacheSet(c, rdb, log, key, data, ttl)
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}

// GET /api/news/:id
func GetNews(rdb *redis.Client, log *logger.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		upstream := devToBase + "/" + url.PathEscape(c.Param("id"))

		key := cacheKey(upstream)
		if cacheGet(c, rdb, log, key) {
			return
		}

		body, status, err := fetchUpstream(upstream)
		if err != nil {
			log.Error("news upstream fetch failed", "err", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch article"})
			return
		}
		if status != http.StatusOK {
			c.JSON(status, gin.H{"error": fmt.Sprintf("Upstream DEV.to %d", status)})
			return
		}

		var article devToArticle
		if err := json.Unmarshal(body, &article); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch article"})
			return
		}

		item := normalize(article)
		if !isLikelyEnglish(item.Title) && !isLikelyEnglish(item.Description) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not in English"})
			return
		}

		data, err := json.Marshal(item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode article"})
			return
		}
		cacheSet(c, rdb, log, key, data, ttl)
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}
