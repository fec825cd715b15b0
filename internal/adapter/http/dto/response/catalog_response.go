package response

type SuggestionsResponse struct {
	Supplier         string   `json:"supplier"`
	SuggestionListID string   `json:"suggestion_list_id"`
	Suggestions      []string `json:"suggestions"`
}

type CatalogSwapResponse struct {
	Supplier string `json:"supplier"`
	Entries  int    `json:"entries"`
}
