package chat

import "strings"

// scriptedResponse holds one keyword rule for the support bot. Rules are
// evaluated in order; the first match wins.
type scriptedResponse struct {
	keywords []string
	reply    string
}

var script = []scriptedResponse{
	{[]string{"hello", "hi"}, "I'm here to help with your solar system! How can I assist you today?"},
	{[]string{"cloud"}, "Solar panels can work during cloudy days, though with reduced efficiency."},
	{[]string{"lifespan", "how long"}, "The average lifespan of our solar panels is 25-30 years."},
	{[]string{"installation", "maintain"}, "Yes, we offer installation services and maintenance packages."},
	{[]string{"performance", "efficiency"}, "Your system is performing at optimal efficiency based on the latest readings."},
	{[]string{"schedule", "visit"}, "We can schedule a maintenance visit for you next week."},
	{[]string{"warranty"}, "The warranty on your solar inverter is valid for 10 years."},
	{[]string{"track", "monitor"}, "You can track your solar production in real-time through the dashboard."},
	{[]string{"position", "placement"}, "The best position for solar panels is south-facing with a 30-degree tilt."},
	{[]string{"bill", "payment"}, "Your next bill payment is scheduled for the 15th of this month."},
}

const fallbackReply = "I'll need to check on that for you. Would you like me to connect you with a customer support representative?"

// BotReply returns the scripted answer for a customer message.
func BotReply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range script {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return fallbackReply
}
