package notification

// Topic is the only FCM topic this service publishes to.
const Topic = "all-devices"

const (
	androidPriorityHigh = "high"
	apnsPriorityHeader  = "apns-priority"
	apnsPriorityNow     = "10"
)

// Fixed content of the test broadcast.
const (
	TestTitle = "🚀 Test Notification"
	TestBody  = "This is a test broadcast to all devices."
)

// BroadcastRequest is the caller-supplied content of a broadcast.
type BroadcastRequest struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Content holds the visible part of a push notification.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AndroidConfig carries the Android delivery hints.
type AndroidConfig struct {
	Priority string `json:"priority"`
}

// APNSConfig carries the headers forwarded to Apple Push Notification service.
type APNSConfig struct {
	Headers map[string]string `json:"headers"`
}

// BroadcastMessage is the topic message handed to a Provider.
type BroadcastMessage struct {
	Topic        string            `json:"topic"`
	Notification Content           `json:"notification"`
	Data         map[string]string `json:"data"`
	Android      AndroidConfig     `json:"android"`
	APNS         APNSConfig        `json:"apns"`
}

// Build returns the topic message for the given content. The data map is
// copied, so callers may reuse theirs; a nil map becomes an empty one.
func Build(title, body string, data map[string]string) *BroadcastMessage {
	cp := make(map[string]string, len(data))
	for k, v := range data {
		cp[k] = v
	}
	return &BroadcastMessage{
		Topic:        Topic,
		Notification: Content{Title: title, Body: body},
		Data:         cp,
		Android:      AndroidConfig{Priority: androidPriorityHigh},
		APNS: APNSConfig{
			Headers: map[string]string{apnsPriorityHeader: apnsPriorityNow},
		},
	}
}

// TestBroadcast returns the fixed message used to verify delivery end to end.
func TestBroadcast() *BroadcastMessage {
	return Build(TestTitle, TestBody, map[string]string{
		"quizId": "test123",
		"test":   "true",
	})
}
