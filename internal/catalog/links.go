package catalog

// External pages surfaced on the home screen. They are printed, never fetched.
const (
	FeedbackURL = "https://forms.gle/WCGzW9eX5ooBZz1b7"
	NearbyURL   = "https://www.google.com/maps/search/hospitals+or+pharmacies+near+me"
)
