package flows

import "ai_dashboard_server/internal/ai/prompts"

// MusicInput has no language hook: its language filters songs, it is not the reply language.
type MusicInput struct {
	Artist   string `json:"artist,omitempty" validate:"max=100"`
	Genre    string `json:"genre,omitempty" validate:"max=100"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=Tigrinya Tigre Saho Arabic Any"`
	Mood     string `json:"mood,omitempty" validate:"max=100"`
}

type SongSuggestion struct {
	SongTitle  string `json:"songTitle"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	YoutubeURL string `json:"youtubeUrl"`
	Reason     string `json:"reason"`
}

type MusicOutput struct {
	PlaylistTitle string           `json:"playlistTitle"`
	Suggestions   []SongSuggestion `json:"suggestions"`
}

const musicSchema = `{
  "type": "object",
  "properties": {
    "playlistTitle": {"type": "string", "minLength": 1},
    "suggestions": {
      "type": "array",
      "minItems": 3,
      "maxItems": 5,
      "items": {
        "type": "object",
        "properties": {
          "songTitle": {"type": "string"},
          "artist": {"type": "string"},
          "album": {"type": "string"},
          "youtubeUrl": {"type": "string", "format": "uri"},
          "reason": {"type": "string"}
        },
        "required": ["songTitle", "artist", "album", "youtubeUrl", "reason"]
      }
    }
  },
  "required": ["playlistTitle", "suggestions"]
}`

// FindEritreanMusic curates a 3-5 track Eritrean playlist.
var FindEritreanMusic = newFlow[MusicInput, MusicOutput]("find-eritrean-music",
	"Discover Eritrean songs by artist, genre, language or mood",
	prompts.GetEritreanMusicPrompt, musicSchema)
