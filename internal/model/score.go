package model

// ScoreRecord is one row of the persistent score log
type ScoreRecord struct {
	Score      int   `json:"score"`
	WordsFound int   `json:"words_found"`
	Time       int64 `json:"time"` // Unix seconds
}

// Stats aggregates the score log
type Stats struct {
	GamesPlayed    int     `json:"games_played"`
	HighestScore   int     `json:"highest_score"`
	AverageScore   int     `json:"average_score"` // floor of the mean
	MeanWordsFound float64 `json:"mean_words_found"`
	ScoreStdDev    float64 `json:"score_std_dev"`
}
