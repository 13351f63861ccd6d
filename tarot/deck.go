package tarot

// Deck is the full 78-card Rider-Waite deck: 22 major arcana and four
// suits of 14.
var Deck = []Card{
	{ID: "fool", Name: "The Fool", Arcana: "major", Number: 0, Keywords: []string{"new beginnings", "innocence", "spontaneity", "free spirit"}, UprightMeaning: "New adventures, leaps of faith, embracing the unknown with optimism", ReversedMeaning: "Recklessness, naivety, foolish risks, poor judgment"},
	{ID: "magician", Name: "The Magician", Arcana: "major", Number: 1, Keywords: []string{"manifestation", "resourcefulness", "power", "action"}, UprightMeaning: "Manifestation, creative power, taking inspired action, utilizing your skills", ReversedMeaning: "Manipulation, wasted talent, illusion, trickery"},
	{ID: "high-priestess", Name: "The High Priestess", Arcana: "major", Number: 2, Keywords: []string{"intuition", "sacred knowledge", "divine feminine", "subconscious"}, UprightMeaning: "Intuition, sacred knowledge, divine feminine, the subconscious mind", ReversedMeaning: "Secrets, withdrawal, silence, repressed feelings"},
	{ID: "empress", Name: "The Empress", Arcana: "major", Number: 3, Keywords: []string{"femininity", "beauty", "nature", "nurturing", "abundance"}, UprightMeaning: "Femininity, beauty, nature, abundance, nurturing", ReversedMeaning: "Creative block, dependence on others, smothering, lack of progress"},
	{ID: "emperor", Name: "The Emperor", Arcana: "major", Number: 4, Keywords: []string{"authority", "structure", "control", "fatherhood"}, UprightMeaning: "Authority, establishment, structure, father figure", ReversedMeaning: "Domination, excessive control, lack of discipline, inflexibility"},
	{ID: "hierophant", Name: "The Hierophant", Arcana: "major", Number: 5, Keywords: []string{"spiritual wisdom", "tradition", "conformity", "education"}, UprightMeaning: "Spiritual wisdom, religious beliefs, conformity, tradition, institutions", ReversedMeaning: "Personal beliefs, freedom, challenging the status quo"},
	{ID: "lovers", Name: "The Lovers", Arcana: "major", Number: 6, Keywords: []string{"love", "harmony", "relationships", "values", "choices"}, UprightMeaning: "Love, harmony, relationships, values alignment, choices", ReversedMeaning: "Self-love, disharmony, imbalance, misalignment of values"},
	{ID: "chariot", Name: "The Chariot", Arcana: "major", Number: 7, Keywords: []string{"control", "willpower", "success", "determination"}, UprightMeaning: "Control, willpower, success, action, determination", ReversedMeaning: "Self-discipline, opposition, lack of direction"},
	{ID: "strength", Name: "Strength", Arcana: "major", Number: 8, Keywords: []string{"strength", "courage", "persuasion", "influence", "compassion"}, UprightMeaning: "Strength, courage, persuasion, influence, compassion", ReversedMeaning: "Inner strength, self-doubt, low energy, raw emotion"},
	{ID: "hermit", Name: "The Hermit", Arcana: "major", Number: 9, Keywords: []string{"soul searching", "introspection", "inner guidance"}, UprightMeaning: "Soul searching, introspection, being alone, inner guidance", ReversedMeaning: "Isolation, loneliness, withdrawal"},
	{ID: "wheel-of-fortune", Name: "Wheel of Fortune", Arcana: "major", Number: 10, Keywords: []string{"good luck", "karma", "life cycles", "destiny"}, UprightMeaning: "Good luck, karma, life cycles, destiny, turning point", ReversedMeaning: "Bad luck, resistance to change, breaking cycles"},
	{ID: "justice", Name: "Justice", Arcana: "major", Number: 11, Keywords: []string{"justice", "fairness", "truth", "cause and effect", "law"}, UprightMeaning: "Justice, fairness, truth, cause and effect, law", ReversedMeaning: "Unfairness, lack of accountability, dishonesty"},
	{ID: "hanged-man", Name: "The Hanged Man", Arcana: "major", Number: 12, Keywords: []string{"pause", "surrender", "letting go", "new perspectives"}, UprightMeaning: "Pause, surrender, letting go, new perspectives", ReversedMeaning: "Delays, resistance, stalling, indecision"},
	{ID: "death", Name: "Death", Arcana: "major", Number: 13, Keywords: []string{"endings", "change", "transformation", "transition"}, UprightMeaning: "Endings, change, transformation, transition", ReversedMeaning: "Resistance to change, personal transformation, inner purging"},
	{ID: "temperance", Name: "Temperance", Arcana: "major", Number: 14, Keywords: []string{"balance", "moderation", "patience", "purpose"}, UprightMeaning: "Balance, moderation, patience, purpose", ReversedMeaning: "Imbalance, excess, self-healing, re-alignment"},
	{ID: "devil", Name: "The Devil", Arcana: "major", Number: 15, Keywords: []string{"shadow self", "attachment", "addiction", "restriction"}, UprightMeaning: "Shadow self, attachment, addiction, restriction, sexuality", ReversedMeaning: "Releasing limiting beliefs, exploring dark thoughts, detachment"},
	{ID: "tower", Name: "The Tower", Arcana: "major", Number: 16, Keywords: []string{"sudden change", "upheaval", "chaos", "revelation"}, UprightMeaning: "Sudden change, upheaval, chaos, revelation, awakening", ReversedMeaning: "Personal transformation, fear of change, averting disaster"},
	{ID: "star", Name: "The Star", Arcana: "major", Number: 17, Keywords: []string{"hope", "faith", "purpose", "renewal", "spirituality"}, UprightMeaning: "Hope, faith, purpose, renewal, spirituality", ReversedMeaning: "Lack of faith, despair, self-trust, disconnection"},
	{ID: "moon", Name: "The Moon", Arcana: "major", Number: 18, Keywords: []string{"illusion", "fear", "anxiety", "subconscious", "intuition"}, UprightMeaning: "Illusion, fear, anxiety, subconscious, intuition", ReversedMeaning: "Release of fear, repressed emotion, inner confusion"},
	{ID: "sun", Name: "The Sun", Arcana: "major", Number: 19, Keywords: []string{"positivity", "fun", "warmth", "success", "vitality"}, UprightMeaning: "Positivity, fun, warmth, success, vitality", ReversedMeaning: "Inner child, feeling down, overly optimistic"},
	{ID: "judgement", Name: "Judgement", Arcana: "major", Number: 20, Keywords: []string{"judgement", "rebirth", "inner calling", "absolution"}, UprightMeaning: "Judgement, rebirth, inner calling, absolution", ReversedMeaning: "Self-doubt, inner critic, ignoring the call"},
	{ID: "world", Name: "The World", Arcana: "major", Number: 21, Keywords: []string{"completion", "accomplishment", "travel", "fulfillment"}, UprightMeaning: "Completion, accomplishment, travel, fulfillment", ReversedMeaning: "Seeking personal closure, short-cuts, delays"},

	// Wands: fire, action, passion.
	{ID: "ace-of-wands", Name: "Ace of Wands", Suit: "wands", Arcana: "minor", Number: 1, Keywords: []string{"inspiration", "new opportunities", "growth", "potential"}, UprightMeaning: "Inspiration, new opportunities, growth, creative spark", ReversedMeaning: "Emerging ideas, lack of direction, delays"},
	{ID: "two-of-wands", Name: "Two of Wands", Suit: "wands", Arcana: "minor", Number: 2, Keywords: []string{"planning", "decisions", "discovery", "personal power"}, UprightMeaning: "Future planning, progress, decisions, discovery", ReversedMeaning: "Fear of unknown, lack of planning, poor choices"},
	{ID: "three-of-wands", Name: "Three of Wands", Suit: "wands", Arcana: "minor", Number: 3, Keywords: []string{"expansion", "foresight", "opportunities", "progress"}, UprightMeaning: "Expansion, foresight, overseas opportunities, leadership", ReversedMeaning: "Obstacles, delays, frustration, limitations"},
	{ID: "four-of-wands", Name: "Four of Wands", Suit: "wands", Arcana: "minor", Number: 4, Keywords: []string{"celebration", "harmony", "homecoming"}, UprightMeaning: "Celebration, joy, harmony, relaxation", ReversedMeaning: "Transition, lack of harmony"},
	{ID: "five-of-wands", Name: "Five of Wands", Suit: "wands", Arcana: "minor", Number: 5, Keywords: []string{"conflict", "competition", "tension"}, UprightMeaning: "Conflict, disagreements, competition", ReversedMeaning: "Inner conflict, avoiding conflict"},
	{ID: "six-of-wands", Name: "Six of Wands", Suit: "wands", Arcana: "minor", Number: 6, Keywords: []string{"success", "victory", "recognition"}, UprightMeaning: "Success, public recognition, progress", ReversedMeaning: "Private victory, self-doubt"},
	{ID: "seven-of-wands", Name: "Seven of Wands", Suit: "wands", Arcana: "minor", Number: 7, Keywords: []string{"challenge", "perseverance", "protection"}, UprightMeaning: "Challenge, competition, perseverance", ReversedMeaning: "Exhaustion, giving up, overwhelmed"},
	{ID: "eight-of-wands", Name: "Eight of Wands", Suit: "wands", Arcana: "minor", Number: 8, Keywords: []string{"movement", "action", "swiftness"}, UprightMeaning: "Movement, fast paced change, action", ReversedMeaning: "Delays, frustration, resisting change"},
	{ID: "nine-of-wands", Name: "Nine of Wands", Suit: "wands", Arcana: "minor", Number: 9, Keywords: []string{"resilience", "courage", "persistence"}, UprightMeaning: "Resilience, courage, persistence", ReversedMeaning: "Inner resources, struggle, overwhelm"},
	{ID: "ten-of-wands", Name: "Ten of Wands", Suit: "wands", Arcana: "minor", Number: 10, Keywords: []string{"burden", "responsibility", "hard work"}, UprightMeaning: "Burden, extra responsibility, hard work", ReversedMeaning: "Doing it all, delegation"},
	{ID: "page-of-wands", Name: "Page of Wands", Suit: "wands", Arcana: "minor", Keywords: []string{"inspiration", "ideas", "discovery"}, UprightMeaning: "Inspiration, ideas, discovery, potential", ReversedMeaning: "Newly formed ideas, self-limiting beliefs"},
	{ID: "knight-of-wands", Name: "Knight of Wands", Suit: "wands", Arcana: "minor", Keywords: []string{"energy", "passion", "adventure"}, UprightMeaning: "Energy, passion, inspired action", ReversedMeaning: "Passion project, haste, scattered energy"},
	{ID: "queen-of-wands", Name: "Queen of Wands", Suit: "wands", Arcana: "minor", Keywords: []string{"courage", "confidence", "independence"}, UprightMeaning: "Courage, confidence, independence", ReversedMeaning: "Self-respect, introverted"},
	{ID: "king-of-wands", Name: "King of Wands", Suit: "wands", Arcana: "minor", Keywords: []string{"leadership", "vision", "honour"}, UprightMeaning: "Natural leader, vision, entrepreneur", ReversedMeaning: "Impulsiveness, haste, ruthless"},

	// Cups: water, emotions, relationships.
	{ID: "ace-of-cups", Name: "Ace of Cups", Suit: "cups", Arcana: "minor", Number: 1, Keywords: []string{"love", "new relationships", "compassion", "creativity"}, UprightMeaning: "Love, new relationships, compassion, emotional awakening", ReversedMeaning: "Emotional loss, blocked creativity, emptiness"},
	{ID: "two-of-cups", Name: "Two of Cups", Suit: "cups", Arcana: "minor", Number: 2, Keywords: []string{"partnership", "unity", "romance", "connection"}, UprightMeaning: "Unified love, partnership, mutual attraction, connection", ReversedMeaning: "Imbalance, broken communication, tension"},
	{ID: "three-of-cups", Name: "Three of Cups", Suit: "cups", Arcana: "minor", Number: 3, Keywords: []string{"celebration", "friendship", "community", "joy"}, UprightMeaning: "Celebration, friendship, creativity, community", ReversedMeaning: "Independence, alone time, social withdrawal"},
	{ID: "four-of-cups", Name: "Four of Cups", Suit: "cups", Arcana: "minor", Number: 4, Keywords: []string{"meditation", "contemplation", "apathy"}, UprightMeaning: "Meditation, contemplation, apathy", ReversedMeaning: "Retreat, checking in for alignment"},
	{ID: "five-of-cups", Name: "Five of Cups", Suit: "cups", Arcana: "minor", Number: 5, Keywords: []string{"regret", "loss", "disappointment"}, UprightMeaning: "Regret, failure, disappointment", ReversedMeaning: "Personal setbacks, self-forgiveness"},
	{ID: "six-of-cups", Name: "Six of Cups", Suit: "cups", Arcana: "minor", Number: 6, Keywords: []string{"nostalgia", "memories", "innocence"}, UprightMeaning: "Revisiting past, childhood memories", ReversedMeaning: "Living in past, forgiveness"},
	{ID: "seven-of-cups", Name: "Seven of Cups", Suit: "cups", Arcana: "minor", Number: 7, Keywords: []string{"opportunities", "choices", "illusion"}, UprightMeaning: "Opportunities, choices, wishful thinking", ReversedMeaning: "Alignment, personal values"},
	{ID: "eight-of-cups", Name: "Eight of Cups", Suit: "cups", Arcana: "minor", Number: 8, Keywords: []string{"disappointment", "abandonment", "withdrawal"}, UprightMeaning: "Disappointment, abandonment, withdrawal", ReversedMeaning: "Trying one more time, indecision"},
	{ID: "nine-of-cups", Name: "Nine of Cups", Suit: "cups", Arcana: "minor", Number: 9, Keywords: []string{"wishes", "contentment", "satisfaction"}, UprightMeaning: "Contentment, satisfaction, wish come true", ReversedMeaning: "Inner happiness, materialism"},
	{ID: "ten-of-cups", Name: "Ten of Cups", Suit: "cups", Arcana: "minor", Number: 10, Keywords: []string{"harmony", "happiness", "alignment"}, UprightMeaning: "Divine love, blissful relationships, harmony", ReversedMeaning: "Disconnection, misaligned values"},
	{ID: "page-of-cups", Name: "Page of Cups", Suit: "cups", Arcana: "minor", Keywords: []string{"creative opportunities", "intuition", "curiosity"}, UprightMeaning: "Creative opportunities, intuitive messages", ReversedMeaning: "New ideas, doubting intuition"},
	{ID: "knight-of-cups", Name: "Knight of Cups", Suit: "cups", Arcana: "minor", Keywords: []string{"romance", "charm", "imagination"}, UprightMeaning: "Romance, charm, imagination, beauty", ReversedMeaning: "Overactive imagination, unrealistic"},
	{ID: "queen-of-cups", Name: "Queen of Cups", Suit: "cups", Arcana: "minor", Keywords: []string{"compassion", "intuition", "warmth"}, UprightMeaning: "Compassionate, emotionally stable, intuitive", ReversedMeaning: "Inner feelings, self-care, self-love"},
	{ID: "king-of-cups", Name: "King of Cups", Suit: "cups", Arcana: "minor", Keywords: []string{"emotional balance", "diplomacy", "compassion"}, UprightMeaning: "Emotionally balanced, compassionate, wise", ReversedMeaning: "Emotional manipulation, volatility"},

	// Swords: air, thoughts, conflict.
	{ID: "ace-of-swords", Name: "Ace of Swords", Suit: "swords", Arcana: "minor", Number: 1, Keywords: []string{"clarity", "breakthrough", "truth", "mental power"}, UprightMeaning: "Breakthrough, clarity, sharp mind, new ideas", ReversedMeaning: "Confusion, chaos, lack of clarity, misinformation"},
	{ID: "two-of-swords", Name: "Two of Swords", Suit: "swords", Arcana: "minor", Number: 2, Keywords: []string{"difficult decisions", "balance", "stalemate", "avoidance"}, UprightMeaning: "Difficult decisions, weighing options, stalemate", ReversedMeaning: "Indecision, confusion, information overload"},
	{ID: "three-of-swords", Name: "Three of Swords", Suit: "swords", Arcana: "minor", Number: 3, Keywords: []string{"heartbreak", "sorrow", "grief", "painful truth"}, UprightMeaning: "Heartbreak, emotional pain, sorrow, grief", ReversedMeaning: "Recovery, forgiveness, moving on"},
	{ID: "four-of-swords", Name: "Four of Swords", Suit: "swords", Arcana: "minor", Number: 4, Keywords: []string{"rest", "restoration", "contemplation"}, UprightMeaning: "Rest, relaxation, meditation, recuperation", ReversedMeaning: "Exhaustion, burnout, stagnation"},
	{ID: "five-of-swords", Name: "Five of Swords", Suit: "swords", Arcana: "minor", Number: 5, Keywords: []string{"conflict", "defeat", "win at all costs"}, UprightMeaning: "Unbridled ambition, win at all costs", ReversedMeaning: "Personal dignity, end of conflict"},
	{ID: "six-of-swords", Name: "Six of Swords", Suit: "swords", Arcana: "minor", Number: 6, Keywords: []string{"transition", "change", "rite of passage"}, UprightMeaning: "Transition, change, releasing baggage", ReversedMeaning: "Personal transition, resistance to change"},
	{ID: "seven-of-swords", Name: "Seven of Swords", Suit: "swords", Arcana: "minor", Number: 7, Keywords: []string{"deception", "strategy", "betrayal"}, UprightMeaning: "Betrayal, deception, acting strategically", ReversedMeaning: "Imposter syndrome, self-deceit"},
	{ID: "eight-of-swords", Name: "Eight of Swords", Suit: "swords", Arcana: "minor", Number: 8, Keywords: []string{"restriction", "imprisonment", "victim mentality"}, UprightMeaning: "Negative thoughts, self-imposed restriction", ReversedMeaning: "Self-limiting beliefs, inner critic"},
	{ID: "nine-of-swords", Name: "Nine of Swords", Suit: "swords", Arcana: "minor", Number: 9, Keywords: []string{"anxiety", "worry", "fear"}, UprightMeaning: "Anxiety, worry, fear, nightmares", ReversedMeaning: "Inner turmoil, deep-seated fears"},
	{ID: "ten-of-swords", Name: "Ten of Swords", Suit: "swords", Arcana: "minor", Number: 10, Keywords: []string{"painful endings", "betrayal", "loss"}, UprightMeaning: "Painful endings, deep wounds, crisis", ReversedMeaning: "Recovery, regeneration, resisting end"},
	{ID: "page-of-swords", Name: "Page of Swords", Suit: "swords", Arcana: "minor", Keywords: []string{"new ideas", "curiosity", "thirst for knowledge"}, UprightMeaning: "New ideas, curiosity, communicating", ReversedMeaning: "Self-expression, all talk no action"},
	{ID: "knight-of-swords", Name: "Knight of Swords", Suit: "swords", Arcana: "minor", Keywords: []string{"action", "impulsiveness", "ambition"}, UprightMeaning: "Ambitious, action-oriented, driven to succeed", ReversedMeaning: "Restless, unfocused, burn-out"},
	{ID: "queen-of-swords", Name: "Queen of Swords", Suit: "swords", Arcana: "minor", Keywords: []string{"independent", "unbiased", "clear thinking"}, UprightMeaning: "Independent, unbiased judgement, direct", ReversedMeaning: "Overly-emotional, cold, bitter"},
	{ID: "king-of-swords", Name: "King of Swords", Suit: "swords", Arcana: "minor", Keywords: []string{"intellectual power", "authority", "truth"}, UprightMeaning: "Mental clarity, intellectual power, truth", ReversedMeaning: "Quiet power, misuse of power"},

	// Pentacles: earth, material, career.
	{ID: "ace-of-pentacles", Name: "Ace of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 1, Keywords: []string{"opportunity", "prosperity", "new venture", "manifestation"}, UprightMeaning: "New financial opportunity, prosperity, manifestation", ReversedMeaning: "Lost opportunity, missed chance, bad investment"},
	{ID: "two-of-pentacles", Name: "Two of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 2, Keywords: []string{"balance", "adaptability", "priorities", "juggling"}, UprightMeaning: "Multiple priorities, time management, adaptability", ReversedMeaning: "Disorganization, overwhelmed, reprioritization"},
	{ID: "three-of-pentacles", Name: "Three of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 3, Keywords: []string{"teamwork", "collaboration", "skill", "learning"}, UprightMeaning: "Teamwork, collaboration, learning, building", ReversedMeaning: "Lack of teamwork, disharmony, misalignment"},
	{ID: "four-of-pentacles", Name: "Four of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 4, Keywords: []string{"security", "conservation", "scarcity"}, UprightMeaning: "Saving money, security, conservatism", ReversedMeaning: "Over-spending, greed, self-protection"},
	{ID: "five-of-pentacles", Name: "Five of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 5, Keywords: []string{"financial loss", "poverty", "insecurity"}, UprightMeaning: "Financial loss, poverty, isolation", ReversedMeaning: "Recovery from financial loss"},
	{ID: "six-of-pentacles", Name: "Six of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 6, Keywords: []string{"generosity", "charity", "sharing"}, UprightMeaning: "Generosity, charity, sharing wealth", ReversedMeaning: "Self-care, unpaid debts"},
	{ID: "seven-of-pentacles", Name: "Seven of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 7, Keywords: []string{"long-term vision", "perseverance", "investment"}, UprightMeaning: "Long-term view, perseverance, investment", ReversedMeaning: "Lack of long-term vision, impatience"},
	{ID: "eight-of-pentacles", Name: "Eight of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 8, Keywords: []string{"apprenticeship", "skill", "mastery"}, UprightMeaning: "Apprenticeship, mastery, skill development", ReversedMeaning: "Self-development, perfectionism"},
	{ID: "nine-of-pentacles", Name: "Nine of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 9, Keywords: []string{"abundance", "luxury", "independence"}, UprightMeaning: "Abundance, luxury, self-sufficiency", ReversedMeaning: "Self-worth, over-investment in work"},
	{ID: "ten-of-pentacles", Name: "Ten of Pentacles", Suit: "pentacles", Arcana: "minor", Number: 10, Keywords: []string{"wealth", "legacy", "family"}, UprightMeaning: "Wealth, financial security, long-term success", ReversedMeaning: "Financial failure, loneliness"},
	{ID: "page-of-pentacles", Name: "Page of Pentacles", Suit: "pentacles", Arcana: "minor", Keywords: []string{"manifestation", "opportunities", "new ventures"}, UprightMeaning: "Manifestation, financial opportunity", ReversedMeaning: "Lack of progress, procrastination"},
	{ID: "knight-of-pentacles", Name: "Knight of Pentacles", Suit: "pentacles", Arcana: "minor", Keywords: []string{"hard work", "efficiency", "responsibility"}, UprightMeaning: "Hard work, productivity, routine, efficiency", ReversedMeaning: "Self-discipline, boredom, feeling stuck"},
	{ID: "queen-of-pentacles", Name: "Queen of Pentacles", Suit: "pentacles", Arcana: "minor", Keywords: []string{"nurturing", "practical", "providing"}, UprightMeaning: "Nurturing, practical, providing financially", ReversedMeaning: "Financial independence, self-care"},
	{ID: "king-of-pentacles", Name: "King of Pentacles", Suit: "pentacles", Arcana: "minor", Keywords: []string{"wealth", "business", "abundance"}, UprightMeaning: "Wealth, business success, leadership, security", ReversedMeaning: "Financially inept, obsessed with wealth"},
}
