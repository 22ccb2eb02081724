package entity

// Game mirrors the catalog service's game resource. Fields stay in the
// catalog's snake_case on the wire so responses pass through unchanged;
// firestore tags exist because favorites and history store full snapshots.
type Game struct {
	ID                    int64             `json:"id" firestore:"id"`
	Name                  string            `json:"name" firestore:"name"`
	Summary               string            `json:"summary,omitempty" firestore:"summary,omitempty"`
	Storyline             string            `json:"storyline,omitempty" firestore:"storyline,omitempty"`
	Category              int               `json:"category,omitempty" firestore:"category,omitempty"`
	Rating                float64           `json:"rating,omitempty" firestore:"rating,omitempty"`
	TotalRating           float64           `json:"total_rating,omitempty" firestore:"totalRating,omitempty"`
	TotalRatingCount      int               `json:"total_rating_count,omitempty" firestore:"totalRatingCount,omitempty"`
	AggregatedRating      float64           `json:"aggregated_rating,omitempty" firestore:"aggregatedRating,omitempty"`
	AggregatedRatingCount int               `json:"aggregated_rating_count,omitempty" firestore:"aggregatedRatingCount,omitempty"`
	FirstReleaseDate      int64             `json:"first_release_date,omitempty" firestore:"firstReleaseDate,omitempty"`
	Cover                 *Image            `json:"cover,omitempty" firestore:"cover,omitempty"`
	Screenshots           []Image           `json:"screenshots,omitempty" firestore:"screenshots,omitempty"`
	Artworks              []Image           `json:"artworks,omitempty" firestore:"artworks,omitempty"`
	Genres                []NamedRef        `json:"genres,omitempty" firestore:"genres,omitempty"`
	Themes                []NamedRef        `json:"themes,omitempty" firestore:"themes,omitempty"`
	GameModes             []NamedRef        `json:"game_modes,omitempty" firestore:"gameModes,omitempty"`
	PlayerPerspectives    []NamedRef        `json:"player_perspectives,omitempty" firestore:"playerPerspectives,omitempty"`
	Platforms             []Platform        `json:"platforms,omitempty" firestore:"platforms,omitempty"`
	InvolvedCompanies     []InvolvedCompany `json:"involved_companies,omitempty" firestore:"involvedCompanies,omitempty"`
	Websites              []Website         `json:"websites,omitempty" firestore:"websites,omitempty"`
	Videos                []Video           `json:"videos,omitempty" firestore:"videos,omitempty"`
	AgeRatings            []AgeRating       `json:"age_ratings,omitempty" firestore:"ageRatings,omitempty"`
	SimilarGames          []Game            `json:"similar_games,omitempty" firestore:"similarGames,omitempty"`
}

type Image struct {
	ID      int64  `json:"id,omitempty" firestore:"id,omitempty"`
	ImageID string `json:"image_id,omitempty" firestore:"imageId,omitempty"`
	URL     string `json:"url,omitempty" firestore:"url,omitempty"`
	Width   int    `json:"width,omitempty" firestore:"width,omitempty"`
	Height  int    `json:"height,omitempty" firestore:"height,omitempty"`
}

type NamedRef struct {
	ID   int64  `json:"id,omitempty" firestore:"id,omitempty"`
	Name string `json:"name,omitempty" firestore:"name,omitempty"`
	Slug string `json:"slug,omitempty" firestore:"slug,omitempty"`
}

type Platform struct {
	ID             int64  `json:"id,omitempty" firestore:"id,omitempty"`
	Name           string `json:"name,omitempty" firestore:"name,omitempty"`
	Abbreviation   string `json:"abbreviation,omitempty" firestore:"abbreviation,omitempty"`
	PlatformFamily int64  `json:"platform_family,omitempty" firestore:"platformFamily,omitempty"`
	PlatformLogo   *Image `json:"platform_logo,omitempty" firestore:"platformLogo,omitempty"`
}

type Company struct {
	ID          int64     `json:"id,omitempty" firestore:"id,omitempty"`
	Name        string    `json:"name,omitempty" firestore:"name,omitempty"`
	Slug        string    `json:"slug,omitempty" firestore:"slug,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Country     int       `json:"country,omitempty" firestore:"country,omitempty"`
	Logo        *Image    `json:"logo,omitempty" firestore:"logo,omitempty"`
	Websites    []Website `json:"websites,omitempty" firestore:"websites,omitempty"`
}

type InvolvedCompany struct {
	ID        int64   `json:"id,omitempty" firestore:"id,omitempty"`
	Company   Company `json:"company,omitempty" firestore:"company,omitempty"`
	Developer bool    `json:"developer,omitempty" firestore:"developer,omitempty"`
	Publisher bool    `json:"publisher,omitempty" firestore:"publisher,omitempty"`
}

type Website struct {
	ID       int64  `json:"id,omitempty" firestore:"id,omitempty"`
	URL      string `json:"url,omitempty" firestore:"url,omitempty"`
	Category int    `json:"category,omitempty" firestore:"category,omitempty"`
}

type Video struct {
	ID      int64  `json:"id,omitempty" firestore:"id,omitempty"`
	VideoID string `json:"video_id,omitempty" firestore:"videoId,omitempty"`
	Name    string `json:"name,omitempty" firestore:"name,omitempty"`
}

type AgeRating struct {
	ID       int64  `json:"id,omitempty" firestore:"id,omitempty"`
	Category int    `json:"category,omitempty" firestore:"category,omitempty"`
	Rating   int    `json:"rating,omitempty" firestore:"rating,omitempty"`
	Synopsis string `json:"synopsis,omitempty" firestore:"synopsis,omitempty"`
}

type ReleaseDate struct {
	ID       int64     `json:"id,omitempty" firestore:"id,omitempty"`
	Date     int64     `json:"date,omitempty" firestore:"date,omitempty"`
	Human    string    `json:"human,omitempty" firestore:"human,omitempty"`
	Platform *Platform `json:"platform,omitempty" firestore:"platform,omitempty"`
	Region   int       `json:"region,omitempty" firestore:"region,omitempty"`
	Status   int       `json:"status,omitempty" firestore:"status,omitempty"`
}

type TimeToBeat struct {
	ID         int64 `json:"id,omitempty"`
	Hastly     int   `json:"hastly,omitempty"`
	Normally   int   `json:"normally,omitempty"`
	Completely int   `json:"completely,omitempty"`
}

type LanguageSupport struct {
	ID                  int64    `json:"id,omitempty"`
	Language            NamedRef `json:"language,omitempty"`
	LanguageSupportType NamedRef `json:"language_support_type,omitempty"`
}

// SearchResult is an entry from the catalog's global search resource, which
// may reference a game or a standalone alternative name.
type SearchResult struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	AlternativeName string `json:"alternative_name,omitempty"`
	PublishedAt     int64  `json:"published_at,omitempty"`
	Game            *Game  `json:"game,omitempty"`
}
