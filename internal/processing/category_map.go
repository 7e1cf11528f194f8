package processing

const (
	CategoryComplaint        = "Complaint"
	CategoryCritique         = "Critique"
	CategoryFeedback         = "Feedback"
	CategoryPositiveResponse = "Positive Response"
	CategoryOther            = "Other"
)

// CategoryMatchOrder is the order categories are tested against each message.
// The first category with a matching keyword takes the message.
var CategoryMatchOrder = []string{
	CategoryCritique,
	CategoryFeedback,
	CategoryPositiveResponse,
	CategoryComplaint,
}

// CategoryPriority breaks ties between categories sharing the highest count.
// It is independent of CategoryMatchOrder; changing either one changes results.
var CategoryPriority = []string{
	CategoryComplaint,
	CategoryCritique,
	CategoryFeedback,
	CategoryPositiveResponse,
	CategoryOther,
}

var CategoryKeywords = map[string][]string{
	CategoryCritique: {
		"criticize",
		"dislike",
		"disappointed",
	},
	CategoryFeedback: {
		"feedback",
		"suggestion",
		"input",
	},
	CategoryPositiveResponse: {
		"thank you",
		"great",
		"happy",
		"appreciate",
	},
	CategoryComplaint: {
		"complaint",
		"issue",
		"problem",
		"unsatisfied",
	},
}

var CategoryRecommendations = map[string]string{
	CategoryComplaint:        "This conversation primarily consists of complaints. It is advised to immediately reach out to the customer, investigate the issue in detail, and provide prompt resolution and compensation if appropriate to restore satisfaction.",
	CategoryCritique:         "This conversation mainly contains critiques. It is recommended to acknowledge the customer's concerns, express understanding, and communicate a clear plan of action to address and improve upon the issues raised.",
	CategoryFeedback:         "This conversation is driven by customer feedback. It is suggested to thank the customer for their input, ensure that their suggestions are noted, and invite them to provide further insights to help improve services.",
	CategoryPositiveResponse: "This conversation reflects a positive customer sentiment. It is recommended to encourage the customer to share their positive experience publicly and maintain this level of service.",
	CategoryOther:            "This conversation does not clearly fall into a specific category. Standard customer service follow-up is advised to ensure that all customer queries are addressed appropriately.",
}
