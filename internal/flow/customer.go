package flow

import "propertychat/internal/model"

// Customer is the buyer-side search conversation
var Customer = &Table{
	Persona: model.PersonaCustomer,
	Opening: []string{
		"I'm looking for a house",
		"I need an apartment",
		"I want something downtown",
		"Show me family homes",
	},
	Entries: []model.PatternEntry{
		{
			Intent:   "greeting",
			Patterns: []string{"hello", "hi", "hey", "start", "begin"},
			Responses: []string{
				"Hi! I'm your AI property assistant. I'm here to help you find your perfect home. What type of property are you looking for?",
				"Hello! Welcome to RealEstate AI. I'll help you discover properties that match your needs. What can I help you find today?",
				"Hi there! Ready to find your dream home? Tell me what you're looking for and I'll find the perfect matches.",
			},
			QuickReplies: []string{
				"I'm looking for a house",
				"I need an apartment",
				"I want something downtown",
				"Show me family homes",
			},
			FollowUp: "property_type",
		},
		{
			Intent:   "property_type",
			Patterns: []string{"house", "apartment", "condo", "townhouse", "studio", "loft"},
			Responses: []string{
				"Great choice! {property_type} can be wonderful. Where would you like to live?",
				"Perfect! I have some amazing {property_type} options. What area are you interested in?",
				"Excellent! {property_type} properties are very popular. Which neighborhood or city interests you?",
			},
			QuickReplies: []string{
				"Downtown area",
				"Suburbs with good schools",
				"Near public transit",
				"Close to tech companies",
			},
			FollowUp: "location",
			Slots:    []string{"propertyType"},
		},
		{
			Intent:   "location",
			Patterns: []string{"downtown", "suburb", "city", "neighborhood", "near", "close to"},
			Responses: []string{
				"Excellent location choice! What's your budget range for this property?",
				"That's a great area! To find the best options, what's your budget range?",
				"Perfect! I know that area well. What budget are you working with?",
			},
			QuickReplies: []string{
				"Under $500k",
				"$500k - $1M",
				"$1M - $2M",
				"Above $2M",
			},
			FollowUp: "budget",
			Slots:    []string{"location"},
		},
		{
			Intent:   "budget",
			Patterns: []string{"budget", "price", "cost", "$", "thousand", "million", "afford"},
			Responses: []string{
				"Got it! With your budget of {budget}, how many bedrooms do you need?",
				"Perfect! For {budget}, I can show you some great options. How many bedrooms are you looking for?",
				"Excellent budget range! How many bedrooms would be ideal for you?",
			},
			QuickReplies: []string{
				"1 bedroom",
				"2 bedrooms",
				"3 bedrooms",
				"4+ bedrooms",
			},
			FollowUp: "bedrooms",
			Slots:    []string{"budget"},
		},
		{
			Intent:   "bedrooms",
			Patterns: []string{"bedroom", "bed", "room", "space"},
			Responses: []string{
				"Perfect! {bedrooms} sounds ideal. Any specific features or amenities you're looking for?",
				"Great! {bedrooms} will give you good space. What features are important to you?",
				"Excellent choice! Any must-have features for your new home?",
			},
			QuickReplies: []string{
				"Modern kitchen",
				"Parking garage",
				"Garden/yard",
				"Pet-friendly",
			},
			FollowUp: "features",
			Slots:    []string{"bedrooms"},
		},
		{
			Intent:   "features",
			Patterns: []string{"kitchen", "parking", "garden", "yard", "gym", "pool", "balcony", "view"},
			Responses: []string{
				"Excellent! I have all the information I need. Let me find the perfect properties for you...",
				"Perfect! Based on your preferences, I'll search for the best matches...",
				"Great! I'm now searching for properties that match all your criteria...",
			},
			Actions:  []string{ActionSearchProperties, ActionNavigateToResults},
			FollowUp: "search_complete",
			Slots:    []string{"features"},
		},
		{
			Intent:   "search_complete",
			Patterns: []string{},
			Responses: []string{
				"I found {count} amazing properties that match your criteria! The top matches are ranked by how well they fit your needs.",
				"Great news! I've found {count} properties that are perfect for you. They're ranked by AI matching score.",
				"Excellent! Here are your top {count} property matches, ranked by how well they meet your requirements.",
			},
			QuickReplies: []string{
				"Tell me about #1",
				"Why is this ranked first?",
				"Show me more options",
				"I want something different",
			},
			FollowUp: "property_discussion",
		},
		{
			Intent:   "property_discussion",
			Patterns: []string{"tell me", "why", "more", "different", "details", "explain"},
			Responses: []string{
				"I'd be happy to explain! This property ranked highly because {ranking_factors}. What would you like to know more about?",
				"Great question! This property matches your criteria because {ranking_factors}. Any specific questions?",
				"Sure! This property is a top match due to {ranking_factors}. What interests you most?",
			},
			QuickReplies: []string{
				"Schedule a viewing",
				"See more photos",
				"Check the neighborhood",
				"Compare with others",
			},
			FollowUp: "property_action",
		},
		{
			Intent:   "refinement",
			Patterns: []string{"actually", "change", "instead", "different", "not quite", "but"},
			Responses: []string{
				"No problem! I can adjust the search. What would you like to change?",
				"Of course! Let me refine the search. What should I adjust?",
				"Absolutely! I'm here to find exactly what you want. What needs to change?",
			},
			QuickReplies: []string{
				"Different location",
				"Change budget",
				"More/fewer bedrooms",
				"Different property type",
			},
			FollowUp: "criteria_update",
		},
		{
			Intent:   "style_preference",
			Patterns: []string{"modern", "traditional", "contemporary", "vintage", "classic", "minimalist"},
			Responses: []string{
				"I love {style} properties! That really helps narrow down the options. Let me update your search...",
				"Perfect! {style} style adds great character. I'll prioritize properties with that aesthetic...",
				"Excellent choice! {style} homes have such appeal. Updating your matches now...",
			},
			Actions: []string{ActionUpdatePreferences, ActionReorderResults},
			Slots:   []string{"style"},
		},
		{
			Intent:   "amenity_focus",
			Patterns: []string{"gym", "pool", "parking", "elevator", "doorman", "roof", "terrace"},
			Responses: []string{
				"Great point! {amenity} is definitely important for quality of life. I'll prioritize properties with that feature...",
				"Absolutely! {amenity} makes such a difference. Let me find properties that have this...",
				"Perfect! {amenity} is a wonderful amenity. Updating your search to prioritize this...",
			},
			Actions: []string{ActionUpdatePreferences, ActionReorderResults},
			Slots:   []string{"amenities"},
		},
		{
			Intent:   "commute_concern",
			Patterns: []string{"commute", "work", "office", "transit", "subway", "bus", "drive"},
			Responses: []string{
				"Commute is so important! Where do you need to get to for work? I can prioritize properties with easy access.",
				"Great consideration! Tell me about your commute needs and I'll factor that into the rankings.",
				"Smart thinking! Commute time affects quality of life. What's your destination for work?",
			},
			QuickReplies: []string{
				"Downtown SF",
				"Silicon Valley",
				"Need public transit",
				"I work from home",
			},
			FollowUp: "commute_details",
			Slots:    []string{"priority"},
		},
		{
			Intent:   "family_needs",
			Patterns: []string{"family", "kids", "children", "school", "playground", "safe"},
			Responses: []string{
				"Family-friendly features are crucial! I'll prioritize properties in great school districts and safe neighborhoods.",
				"Perfect! Family needs are my priority. Looking for properties with good schools and family amenities...",
				"Excellent! I'll focus on family-friendly properties with schools, parks, and safe neighborhoods nearby.",
			},
			Actions: []string{ActionUpdatePreferences, ActionReorderResults},
			Slots:   []string{"priority"},
		},
	},
	Fallback: model.PatternEntry{
		Intent: FallbackIntent,
		Responses: []string{
			"I've updated the search results based on your preferences. I can help you find exactly what you're looking for. What specific features or requirements are most important to you?",
		},
		QuickReplies: []string{
			"Filter by property type",
			"Set budget range",
			"Specify location preferences",
			"Add feature requirements",
		},
	},
}
