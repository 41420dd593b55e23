package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// jsonDuration reads and writes Go duration strings ("45m", "1h30m") so
// clients never deal in raw nanosecond counts.
type jsonDuration time.Duration

func (d jsonDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *jsonDuration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string such as \"1h30m\"")
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	if parsed < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	*d = jsonDuration(parsed)
	return nil
}

func clubIDParam(r *http.Request) string {
	return chi.URLParam(r, "club_id")
}

func detailedQuery(r *http.Request) bool {
	detailed, _ := strconv.ParseBool(r.URL.Query().Get("detailed"))
	return detailed
}
