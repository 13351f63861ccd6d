package oracle

import (
	"fmt"
	"strings"
	"time"

	"github.com/soullec/soullec/tarot"
)

const emotionSystemPrompt = `You are an expert in emotional intelligence and psychology. Deeply analyze the user's emotional state, going beyond surface-level words to understand their underlying feelings, desires, and energy. Identify the primary emotion from these categories: hopeful, stressed, in love, lost, grateful, anxious, peaceful, uncertain, empowered. Also detect subtle nuances and specific triggers mentioned. Respond with JSON in this format: { "emotion": string, "confidence": number, "nuances": string }`

var emotionTones = map[string]string{
	"hopeful":   "uplifting and visionary, painting a vivid picture of their emerging future",
	"stressed":  "deeply calming with practical wisdom, like a trusted mentor who truly understands",
	"in love":   "romantic and mystical, celebrating the divine magic of connection",
	"lost":      "illuminating and directive, revealing the hidden path they've been seeking",
	"grateful":  "amplifying their power, showing how their gratitude is already manifesting miracles",
	"anxious":   "grounding with gentle authority, transforming fear into sacred awareness",
	"peaceful":  "ethereal and transcendent, honoring their alignment with universal flow",
	"uncertain": "revelatory and confidence-building, unveiling the answers they already possess",
	"empowered": "magnificently validating, reflecting their divine strength back to them",
}

const defaultTone = "warm and deeply insightful"

func language(lang string) string {
	if lang == "" {
		return "English"
	}
	return lang
}

func messagePrompts(req MessageRequest) (system, user string) {
	tone := emotionTones[req.Emotion]
	if tone == "" {
		tone = defaultTone
	}
	lang := language(req.Language)

	var b strings.Builder
	fmt.Fprintf(&b, `You are a divine oracle channeling cosmic wisdom with uncanny accuracy. Your messages feel like they're reading the person's soul - specific enough to feel personally written for them, yet universally resonant.

CRITICAL INSTRUCTIONS:
1. Reference SPECIFIC words/phrases from their input - weave them into your response naturally
2. If horoscope data is provided, make CONCRETE connections (e.g., "Your Fire element is fueling this exact energy you're feeling")
3. Use the %s tone
4. Create 4-5 sentences that build from validation to insight to revelation to actionable guidance
5. Include ONE specific, actionable step they can take today
6. End with something that makes them want to come back tomorrow
7. Use sensory, visceral language that creates emotional resonance
8. Mirror their energy level and vocabulary sophistication
9. Make it feel like divine timing - as if the universe orchestrated this exact message for this exact moment

AVOID: Generic platitudes, vague statements, cliches like "trust the universe" without context. BE SPECIFIC AND PERSONAL.`, tone)

	if req.HoroscopeContext != "" {
		fmt.Fprintf(&b, "\n\nASTROLOGICAL CONTEXT (use this SPECIFICALLY - mention their actual animals, elements, or pillars by name):\n%s", req.HoroscopeContext)
	}
	if req.Religion != "" {
		fmt.Fprintf(&b, "\n\nSPIRITUAL CONTEXT: The person follows %s. Naturally weave in relevant wisdom from their faith tradition when it genuinely fits their situation - a Bible verse, a teaching from the Quran, Buddhist wisdom, etc. Keep it conversational and authentic, not preachy.", req.Religion)
	}
	fmt.Fprintf(&b, "\n\nLANGUAGE: Write your entire response in %[1]s. Use natural, fluent %[1]s that feels native and authentic. All content must be in %[1]s.", lang)

	user = fmt.Sprintf("Their exact words: %q\n\nCreate a message that acknowledges what they wrote, uses their specific language, and provides genuine insight that feels personally crafted for them. Respond completely in %s.", req.Feeling, lang)
	return b.String(), user
}

func affirmationPrompts(req AffirmationRequest) (system, user string) {
	lang := language(req.Language)

	var b strings.Builder
	b.WriteString(`You are a master manifestation coach creating personalized affirmations that feel electric with possibility.

INSTRUCTIONS:
1. Use their EXACT desire/language and elevate it
2. Write 4-5 powerful sentences in present tense
3. Make it visceral - they should FEEL it in their body
4. Include specific sensory details about what manifesting this feels like
5. Build from "I am" to "I feel" to "I receive" to "I celebrate"
6. Make it so potent they'll want to screenshot and share it
7. End with something that creates certainty and excitement

Use cinematic, emotionally charged language. Make them feel like their manifestation is not just possible but INEVITABLE.`)

	if req.HoroscopeContext != "" {
		fmt.Fprintf(&b, "\n\nASTROLOGICAL POWER: Connect their desire to their cosmic blueprint. Mention specific elements or animals that amplify their manifesting ability:\n%s", req.HoroscopeContext)
	}
	if req.Religion != "" {
		fmt.Fprintf(&b, "\n\nSPIRITUAL CONTEXT: They practice %s. If it feels natural, incorporate relevant spiritual concepts from their tradition - like faith and answered prayer for Christians, divine will for Muslims, mindful intention for Buddhists, etc. Keep it authentic to how someone of that faith would think about manifestation.", req.Religion)
	}
	fmt.Fprintf(&b, "\n\nLANGUAGE: Write your entire affirmation in %[1]s. Use natural, powerful %[1]s that resonates deeply. All content must be in %[1]s.", lang)

	user = fmt.Sprintf("Their desire: %q\n\nCreate an affirmation so powerful they'll read it every morning and feel unstoppable. Write completely in %s.", req.Desire, lang)
	return b.String(), user
}

func horoscopePrompts(req HoroscopeRequest, now time.Time) (system, user string) {
	lang := language(req.Language)

	var timeContext, periodDescription, timeInstructions string
	switch req.Period {
	case PeriodMonthly:
		timeContext = now.Format("January 2006")
		periodDescription = "monthly"
		timeInstructions = "Highlight key dates or phases within the month that will be significant"
	case PeriodYearly:
		timeContext = now.Format("2006")
		periodDescription = "yearly"
		timeInstructions = "Identify major themes and turning points throughout the year"
	case PeriodSpecific:
		timeContext = now.Format("Monday, January 2, 2006")
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			timeContext = d.Format("Monday, January 2, 2006")
		}
		periodDescription = "for this specific date"
		timeInstructions = "Focus on the unique cosmic energy of this particular date"
	default:
		timeContext = now.Format("Monday, January 2, 2006")
		periodDescription = "daily"
		timeInstructions = `Include specific times or situations ("around midday," "in conversations with authority figures")`
	}

	var b strings.Builder
	if req.Question != "" {
		fmt.Fprintf(&b, `You are a renowned astrologer with decades of experience. Answer the user's specific question using their astrological profile and cosmic insights for the %s timeframe (%s).

QUESTION: %q

INSTRUCTIONS:
1. Reference relevant cosmic events for %s (Mercury movements, moon phases, planetary alignments)
2. Connect these to their SPECIFIC astrological profile (mention their actual animals, elements, pillars)
3. DIRECTLY answer their question with 5-6 insightful sentences
4. %s
5. Provide practical guidance specific to their question
6. End with an empowering message that inspires action`,
			periodDescription, timeContext, req.Question, timeContext, timeInstructions)
	} else {
		closing := "Provide an overarching theme or message"
		if req.Period == PeriodDaily || req.Period == "" {
			closing = "End with something that creates anticipation"
		}
		fmt.Fprintf(&b, `You are a renowned astrologer with decades of experience. Create a personalized %s horoscope that feels eerily accurate and actionable.

INSTRUCTIONS:
1. Reference %s's cosmic events (Mercury movements, moon phases, planetary alignments)
2. Connect these to their SPECIFIC astrological profile (mention their actual animals, elements, pillars)
3. Give 5-6 sentences: cosmic context, what this means for THEM specifically, practical actions, what to watch for, and an inspiring close
4. %s
5. Make predictions that are specific enough to feel real but broad enough to likely happen
6. %s
7. Use mystical yet credible language - like a wise astrologer, not a fortune cookie

Make them think "how did they know?"`,
			periodDescription, timeContext, timeInstructions, closing)

		if req.Religion != "" {
			when := "this period"
			if req.Period == PeriodDaily || req.Period == "" {
				when = "today"
			}
			fmt.Fprintf(&b, "\n\nSPIRITUAL PRACTICE: They practice %s. If appropriate, you can suggest a simple spiritual practice for %s that aligns with both their cosmic energy and their faith (like a prayer, meditation, or reflection from their tradition).", req.Religion, when)
		}
	}
	fmt.Fprintf(&b, "\n\nLANGUAGE: Write your entire horoscope reading in %[1]s. Use natural, mystical %[1]s that feels authentic. All content must be in %[1]s.", lang)

	if req.Question != "" {
		user = fmt.Sprintf("Time period: %s\nTheir astrological profile:\n%s\n\nAnswer their question: %q\n\nWrite completely in %s.", timeContext, req.HoroscopeContext, req.Question, lang)
	} else {
		user = fmt.Sprintf("Time period: %s\nTheir astrological profile:\n%s\n\nCreate their %s reading that feels personally crafted for them. Write completely in %s.", timeContext, req.HoroscopeContext, periodDescription, lang)
	}
	return b.String(), user
}

func tarotPrompts(reading tarot.Reading, religion, lang string) (system, user string) {
	lang = language(lang)

	descriptions := make([]string, len(reading.Cards))
	for i, d := range reading.Cards {
		name := d.Card.Name
		if d.Reversed {
			name += " (Reversed)"
		}
		descriptions[i] = fmt.Sprintf("Position %q: %s - %s", d.Position, name, d.Meaning())
	}

	var b strings.Builder
	b.WriteString(`You are a mystical tarot reader with deep knowledge of symbolism, archetypes, and the human psyche. You provide profound, personalized interpretations that feel like they speak directly to the querent's soul.

GUIDELINES:
1. DIRECTLY ADDRESS the querent's question - your reading must provide clear insights and answers to what they've asked
2. Weave the cards together into a cohesive narrative that tells the querent's story
3. Reference specific symbols and imagery from the cards as they relate to the question
4. Connect the card positions (Past, Present, Future, etc.) to create a flowing reading that answers their query
5. Be specific and actionable - avoid generic platitudes
6. Acknowledge both light and shadow aspects relevant to their question
7. Provide empowering, practical guidance that helps them take action on their question`)

	if religion != "" {
		fmt.Fprintf(&b, "\n\nSPIRITUAL BACKGROUND: They practice %s. When interpreting the cards, if there's wisdom from their faith tradition that genuinely relates to what the cards are showing, weave it in naturally - a relevant teaching, scripture, or concept that adds depth to the reading.", religion)
	}
	fmt.Fprintf(&b, `

LANGUAGE: Write your ENTIRE response in %[1]s. Use natural, mystical %[1]s that feels authentic and profound. All content must be in %[1]s.

You must respond with a JSON object containing two fields:
- "reading": 250-350 words for the main interpretation that answers their question
- "advice": 50-80 words of practical advice specific to their situation

Write both fields in mystical yet accessible %[1]s, deeply personal and resonant to their specific query.`, lang)

	user = fmt.Sprintf("Question: %q\n\nCards Drawn:\n%s\n\nSpread: %s\n\nProvide a profound tarot reading in JSON format that directly answers the querent's question. Write completely in %s.",
		reading.Question, strings.Join(descriptions, "\n"), reading.Spread, lang)
	return b.String(), user
}

var defaultTarotReadings = map[string]string{
	"English":              "The cards speak softly today. Trust what your heart already knows.",
	"Spanish":              "Las cartas hablan suavemente hoy. Confía en lo que tu corazón ya sabe.",
	"Portuguese":           "As cartas falam suavemente hoje. Confie no que seu coração já sabe.",
	"Thai":                 "ไพ่กำลังพูดเบาๆ วันนี้ ไว้วางใจในสิ่งที่หัวใจคุณรู้อยู่แล้ว",
	"Chinese (Simplified)": "今天牌在轻声诉说。相信你内心已经知道的。",
	"Japanese":             "今日カードは静かに語っています。あなたの心がすでに知っていることを信じてください。",
	"Korean":               "오늘 카드가 부드럽게 말하고 있습니다. 당신의 마음이 이미 알고 있는 것을 믿으세요.",
	"French":               "Les cartes parlent doucement aujourd'hui. Faites confiance à ce que votre cœur sait déjà.",
	"German":               "Die Karten sprechen heute leise. Vertraue auf das, was dein Herz bereits weiß.",
	"Italian":              "Le carte parlano dolcemente oggi. Fidati di ciò che il tuo cuore già sa.",
	"Hindi":                "आज कार्ड धीरे से बोल रहे हैं। अपने दिल की बात पर भरोसा करें जो वह पहले से जानता है।",
}

var defaultTarotAdvice = map[string]string{
	"English":              "Trust the wisdom the cards have revealed. Take one small step forward today.",
	"Spanish":              "Confía en la sabiduría que las cartas han revelado. Da un pequeño paso adelante hoy.",
	"Portuguese":           "Confie na sabedoria que as cartas revelaram. Dê um pequeno passo à frente hoje.",
	"Thai":                 "เชื่อในภูมิปัญญาที่ไพ่เผยให้เห็น ก้าวเล็กๆ ไปข้างหน้าวันนี้",
	"Chinese (Simplified)": "相信牌所揭示的智慧。今天向前迈出一小步。",
	"Japanese":             "カードが明らかにした知恵を信じてください。今日、小さな一歩を踏み出しましょう。",
	"Korean":               "카드가 드러낸 지혜를 믿으세요. 오늘 작은 한 걸음을 내디디세요.",
	"French":               "Faites confiance à la sagesse que les cartes ont révélée. Faites un petit pas en avant aujourd'hui.",
	"German":               "Vertraue auf die Weisheit, die die Karten offenbart haben. Mache heute einen kleinen Schritt nach vorne.",
	"Italian":              "Fidati della saggezza che le carte hanno rivelato. Fai un piccolo passo avanti oggi.",
	"Hindi":                "कार्डों द्वारा प्रकट की गई बुद्धि पर विश्वास करें। आज एक छोटा कदम आगे बढ़ाएं।",
}

func defaultTarotInterpretation(lang string) TarotInterpretation {
	lang = language(lang)
	reading, ok := defaultTarotReadings[lang]
	if !ok {
		reading = defaultTarotReadings["English"]
	}
	advice, ok := defaultTarotAdvice[lang]
	if !ok {
		advice = defaultTarotAdvice["English"]
	}
	return TarotInterpretation{Reading: reading, Advice: advice}
}
