package insight

import (
	"math/rand"
	"strings"

	"github.com/siderealhq/insight-service/internal/model"
)

// fallbackTemplates holds hand-authored insights per sign, served when
// the generation backend is unavailable or fails.
var fallbackTemplates = map[model.ZodiacSign][]string{
	model.Aries: {
		"Your fiery Aries energy is strong today. Take bold action on your goals.",
		"As an Aries, you're feeling particularly driven. Channel this energy into productive pursuits.",
	},
	model.Taurus: {
		"Your grounded Taurus nature will help you stay steady through any challenges today.",
		"As a Taurus, focus on stability and comfort. Trust your practical instincts.",
	},
	model.Gemini: {
		"Your curious Gemini mind is buzzing with ideas today. Share your thoughts with others.",
		"As a Gemini, communication is key. Express yourself clearly and listen actively.",
	},
	model.Cancer: {
		"Your intuitive Cancer nature is heightened today. Trust your emotional intelligence.",
		"As a Cancer, focus on nurturing relationships and creating a safe space for yourself.",
	},
	model.Leo: {
		"Your innate leadership and warmth will shine today. Embrace spontaneity and avoid overthinking.",
		"As a Leo, your natural charisma is at its peak. Share your light with others.",
	},
	model.Virgo: {
		"Your analytical Virgo mind will help you solve complex problems today.",
		"As a Virgo, attention to detail is your strength. Use it to improve your daily routines.",
	},
	model.Libra: {
		"Your diplomatic Libra nature will help you find balance in relationships today.",
		"As a Libra, seek harmony and beauty. Make time for things that bring you joy.",
	},
	model.Scorpio: {
		"Your intense Scorpio energy is focused today. Dive deep into what matters most.",
		"As a Scorpio, your transformative power is strong. Embrace change and growth.",
	},
	model.Sagittarius: {
		"Your adventurous Sagittarius spirit is calling. Explore new ideas and perspectives.",
		"As a Sagittarius, your optimism will carry you through. Keep your eyes on the horizon.",
	},
	model.Capricorn: {
		"Your disciplined Capricorn nature will help you achieve your goals today.",
		"As a Capricorn, focus on long-term planning. Your hard work is paying off.",
	},
	model.Aquarius: {
		"Your innovative Aquarius mind is full of unique ideas today. Share your vision.",
		"As an Aquarius, your humanitarian spirit is strong. Connect with your community.",
	},
	model.Pisces: {
		"Your intuitive Pisces nature is guiding you today. Trust your inner voice.",
		"As a Pisces, your creativity and empathy are heightened. Express yourself authentically.",
	},
}

// defaultTemplate handles signs missing from the table.
const defaultTemplate = "{name}, trust your intuition today. The stars are aligned in your favor."

// returningUserSuffix is appended once the user has more than one
// recorded interaction.
const returningUserSuffix = " Based on your journey, continue trusting your path."

// FallbackInsight renders a deterministic template insight. Users with
// more than two recorded insights get a stable index (history length mod
// table size) so repeated calls reproduce the same text; newer users get
// a uniformly random template.
func FallbackInsight(name string, sign model.ZodiacSign, profile *model.UserProfile) string {
	templates, ok := fallbackTemplates[sign]
	if !ok {
		templates = []string{defaultTemplate}
	}

	var tpl string
	if profile != nil && len(profile.PastInsights) > 2 {
		tpl = templates[len(profile.PastInsights)%len(templates)]
	} else {
		tpl = templates[rand.Intn(len(templates))]
	}

	var out string
	if strings.Contains(tpl, "{name}") {
		out = strings.ReplaceAll(tpl, "{name}", name)
	} else {
		out = name + ", " + tpl
	}

	if profile != nil && profile.InsightsCount > 1 {
		out += returningUserSuffix
	}
	return out
}
