package domain

import (
	"fmt"
	"time"
)

type GeneratedImage struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Prompt    string    `json:"prompt"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ImagePrompt is the text sent to the text-to-image service.
func ImagePrompt(category, prompt string) string {
	return fmt.Sprintf("imagine a %s : %s", category, prompt)
}
