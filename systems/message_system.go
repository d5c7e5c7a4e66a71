package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard game messages (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeBounce is for ricochet messages (gold)
	MessageTypeBounce
	// MessageTypeHit is for tank hits (red)
	MessageTypeHit
	// MessageTypeAlert is for round results (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for system messages (purple/magenta)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeBounce:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeHit:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid (Purple)
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instances (singletons)
var (
	globalMessageLog *MessageLog
	globalDebugLog   *MessageLog
)

// GetMessageLog returns the global message log shown in the HUD
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog(100)
	}
	return globalMessageLog
}

// GetDebugLog returns the global debug log shown on the debug screen
func GetDebugLog() *MessageLog {
	if globalDebugLog == nil {
		globalDebugLog = NewMessageLog(500)
	}
	return globalDebugLog
}

// NewMessageLog creates a new message log keeping the last max messages
func NewMessageLog(max int) *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: max,
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddAlert adds an alert message to the log
func (ml *MessageLog) AddAlert(message string) {
	ml.AddTyped(message, MessageTypeAlert)
}

// AddTyped adds a message of the given type to the log
func (ml *MessageLog) AddTyped(message string, kind MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: kind})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
