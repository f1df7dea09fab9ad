package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Key identifies a user-facing message
type Key string

const (
	PushTitle          Key = "push.title"
	PushPlateLine      Key = "push.plate"
	PushMessageLine    Key = "push.message"
	PushLocationLine   Key = "push.location"
	PushNoLocationLine Key = "push.no_location"
	DefaultMessage     Key = "notify.default_message"

	ErrPlateRequired    Key = "error.plate_required"
	ErrMessageTooLong   Key = "error.message_too_long"
	ErrInvalidLocation  Key = "error.invalid_location"
	ErrInvalidBody      Key = "error.invalid_body"
	ErrCarNotFound      Key = "error.car_not_found"
	ErrDeliveryFailed   Key = "error.delivery_failed"
	ErrCooldownActive   Key = "error.cooldown_active"
	ErrInternal         Key = "error.internal"
	ErrCountryForbidden Key = "error.country_forbidden"
	ErrRateLimited      Key = "error.rate_limited"
)

var messages = map[language.Tag]map[Key]string{
	language.Chinese: {
		PushTitle:           "挪车请求",
		PushPlateLine:       "🚗 挪车请求: %s",
		PushMessageLine:     "💬 留言: %s",
		PushLocationLine:    "📍 已附带位置信息，点击查看",
		PushNoLocationLine:  "⚠️ 未提供位置信息",
		DefaultMessage:      "车旁有人等待",
		ErrPlateRequired:    "请输入车牌号",
		ErrMessageTooLong:   "留言过长，最多 %d 个字",
		ErrInvalidLocation:  "位置信息无效",
		ErrInvalidBody:      "请求格式错误",
		ErrCarNotFound:      "未找到该车辆信息，请检查车牌是否输入正确",
		ErrDeliveryFailed:   "通知发送失败，请稍后重试",
		ErrCooldownActive:   "请等待 %d 秒后再试",
		ErrInternal:         "服务暂时不可用",
		ErrCountryForbidden: "当前地区无法访问",
		ErrRateLimited:      "请求过于频繁",
	},
	language.English: {
		PushTitle:           "Move car request",
		PushPlateLine:       "🚗 Move car request: %s",
		PushMessageLine:     "💬 Message: %s",
		PushLocationLine:    "📍 Location attached, tap to view",
		PushNoLocationLine:  "⚠️ No location provided",
		DefaultMessage:      "Someone is waiting by your car",
		ErrPlateRequired:    "Please enter a license plate",
		ErrMessageTooLong:   "Message is too long, at most %d characters",
		ErrInvalidLocation:  "Invalid location",
		ErrInvalidBody:      "Malformed request body",
		ErrCarNotFound:      "No car found for this plate, please check the input",
		ErrDeliveryFailed:   "Failed to deliver the notification, please try again later",
		ErrCooldownActive:   "Please wait %d seconds before trying again",
		ErrInternal:         "Service temporarily unavailable",
		ErrCountryForbidden: "Access from your region is not allowed",
		ErrRateLimited:      "Too many requests",
	},
}

var supported = []language.Tag{language.Chinese, language.English}

// Catalog resolves messages for a negotiated language
type Catalog struct {
	matcher  language.Matcher
	fallback language.Tag
}

// NewCatalog creates a catalog. defaultLang is used when negotiation
// finds no match; unknown values fall back to Chinese.
func NewCatalog(defaultLang string) *Catalog {
	fallback := language.Chinese
	if tag, err := language.Parse(defaultLang); err == nil {
		if base, _ := tag.Base(); base.String() == "en" {
			fallback = language.English
		}
	}
	return &Catalog{
		matcher:  language.NewMatcher(supported),
		fallback: fallback,
	}
}

// Negotiate picks a supported language from an Accept-Language header
// value or a bare language code.
func (c *Catalog) Negotiate(accept string) language.Tag {
	if accept == "" {
		return c.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.fallback
	}
	return supported[idx]
}

// Lang is Negotiate returning the base language code ("zh" or "en")
func (c *Catalog) Lang(accept string) string {
	base, _ := c.Negotiate(accept).Base()
	return base.String()
}

// T renders a message in the language negotiated from accept
func (c *Catalog) T(accept string, key Key, args ...interface{}) string {
	table := messages[c.Negotiate(accept)]
	msg, ok := table[key]
	if !ok {
		msg, ok = messages[c.fallback][key]
		if !ok {
			return string(key)
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
