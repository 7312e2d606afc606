package flow

import "propertychat/internal/model"

// Seller walks a seller through the facts a listing needs
var Seller = &Table{
	Persona: model.PersonaSeller,
	Opening: []string{
		"Single-family house",
		"Condo/Apartment",
		"Townhouse",
		"Commercial property",
	},
	Entries: []model.PatternEntry{
		{
			Intent:   "welcome",
			Patterns: []string{"hello", "hi", "start", "begin", "sell"},
			Responses: []string{
				"Welcome! I'm your AI listing assistant. I'll help you create a compelling property listing in just a few minutes. Let's start with the basics - what type of property are you selling?",
				"Hi there! I'm here to make selling your property easy. I'll guide you through creating a professional listing that attracts buyers. What kind of property are you listing?",
				"Hello! Ready to sell your property? I'll help you create an amazing listing that showcases your property's best features. What type of property is it?",
			},
			QuickReplies: []string{
				"Single-family house",
				"Condo/Apartment",
				"Townhouse",
				"Commercial property",
			},
			FollowUp: "property_type",
		},
		{
			Intent:   "property_type",
			Patterns: []string{"house", "condo", "apartment", "townhouse", "commercial", "land"},
			Responses: []string{
				"Perfect! A {propertyType} can be a great investment. Now, where is your property located? Please provide the full address.",
				"Excellent! {propertyType} properties are in demand. What's the address of your property?",
				"Great choice! I'll help you showcase your {propertyType}. What's the complete address?",
			},
			FollowUp: "address",
			Slots:    []string{model.FieldPropertyType},
		},
		{
			Intent:   "address",
			Patterns: []string{"address", "location", "street", "avenue", "drive", "road"},
			Responses: []string{
				"Got it! {address} sounds like a great location. Now tell me about the size - how many bedrooms and bathrooms does it have?",
				"Perfect! I've noted the address as {address}. How many bedrooms and bathrooms are in the property?",
				"Excellent! {address} is recorded. Let's talk about the layout - bedrooms and bathrooms?",
			},
			QuickReplies: []string{
				"1 bed, 1 bath",
				"2 bed, 2 bath",
				"3 bed, 2 bath",
				"4+ bedrooms",
			},
			FollowUp: "room_details",
			Slots:    []string{model.FieldAddress, model.FieldCity, model.FieldState, model.FieldZipCode},
		},
		{
			Intent:   "room_details",
			Patterns: []string{"bedroom", "bathroom", "bed", "bath", "room"},
			Responses: []string{
				"Great! {bedrooms} bedrooms and {bathrooms} bathrooms gives good space. What's the total square footage of the property?",
				"Perfect! That's a nice layout with {bedrooms} bedrooms and {bathrooms} bathrooms. How many square feet is the property?",
				"Excellent! {bedrooms} bed, {bathrooms} bath is a popular configuration. What's the square footage?",
			},
			FollowUp: "square_footage",
			Slots:    []string{model.FieldBedrooms, model.FieldBathrooms},
		},
		{
			Intent:   "square_footage",
			Patterns: []string{"square feet", "sqft", "sq ft", "footage", "size"},
			Responses: []string{
				"Perfect! {sqft} square feet is a great size. Now, what's your asking price for the property?",
				"Excellent! {sqft} sq ft offers good value. What price are you looking to list at?",
				"Great size at {sqft} square feet! What's your target selling price?",
			},
			QuickReplies: []string{
				"Under $500k",
				"$500k - $1M",
				"$1M - $2M",
				"Let me think about pricing",
			},
			FollowUp: "pricing",
			Slots:    []string{model.FieldSqft},
		},
		{
			Intent:   "pricing",
			Patterns: []string{"price", "cost", "$", "thousand", "million", "value"},
			Responses: []string{
				"Excellent! ${price} is noted. Now let's make your listing shine - tell me about the key features and amenities that make your property special.",
				"Perfect price point at ${price}! Now, what are the standout features of your property that buyers will love?",
				"Great! ${price} is recorded. What unique features or recent updates should we highlight?",
			},
			QuickReplies: []string{
				"Updated kitchen",
				"Hardwood floors",
				"Private garden",
				"Parking included",
			},
			FollowUp: "features",
			Slots:    []string{model.FieldPrice},
		},
		{
			Intent:   "features",
			Patterns: []string{"kitchen", "bathroom", "floors", "garden", "parking", "updated", "renovated", "new"},
			Responses: []string{
				"Wonderful! {features} really add value. Tell me more about your property - what makes the neighborhood special? Any nearby amenities?",
				"Excellent features! {features} will definitely attract buyers. What about the neighborhood - what makes it special?",
				"Perfect! {features} are great selling points. What neighborhood amenities should buyers know about?",
			},
			FollowUp: "neighborhood",
			Slots:    []string{model.FieldFeatures},
		},
		{
			Intent:   "neighborhood",
			Patterns: []string{"neighborhood", "area", "nearby", "close", "walking", "schools", "shopping", "transit"},
			Responses: []string{
				"Excellent! Those neighborhood features are fantastic. Now I need some photos - do you have high-quality photos of your property ready to upload?",
				"Perfect! {neighborhood} details will help buyers understand the lifestyle. Do you have professional photos of the property?",
				"Great neighborhood highlights! For the best listing, we'll need photos. Do you have quality images ready?",
			},
			QuickReplies: []string{
				"Yes, I have photos ready",
				"I need to take photos",
				"I want professional photos",
				"Skip photos for now",
			},
			FollowUp: "photos",
			Slots:    []string{model.FieldNeighborhood},
		},
		{
			Intent:   "photos",
			Patterns: []string{"photos", "pictures", "images", "camera", "professional"},
			Responses: []string{
				"Perfect! Good photos make a huge difference. Finally, write a brief description of your property highlighting what makes it special for potential buyers.",
				"Excellent! Photos really showcase your property. Now, let's create a compelling description that will attract buyers. What makes your property unique?",
				"Great! Photos are crucial for attracting buyers. For the final touch, tell me what makes your property stand out in a few sentences.",
			},
			FollowUp: "description",
			Slots:    []string{model.FieldImages},
		},
		{
			Intent:   "description",
			Patterns: []string{"description", "unique", "special", "standout", "highlight"},
			Responses: []string{
				"Fantastic! I have all the information needed. Let me create your professional listing now...",
				"Perfect! That's a compelling description. I'm now generating your complete property listing...",
				"Excellent! With all these details, I'll create an attractive listing that will draw in potential buyers...",
			},
			Actions:  []string{ActionGenerateListing, ActionCreateForm},
			FollowUp: "listing_generation",
			Slots:    []string{model.FieldDescription},
		},
		{
			Intent:   "listing_generation",
			Patterns: []string{},
			Responses: []string{
				"Amazing! I've created your professional listing with all the details. Please review the form on the right and let me know if you'd like to adjust anything.",
				"Perfect! Your listing is ready! I've filled out all the fields based on our conversation. Take a look and let me know if anything needs changing.",
				"Excellent! Your property listing has been generated. Review the details on the right side and we can make any adjustments needed.",
			},
			QuickReplies: []string{
				"Looks perfect!",
				"Change the description",
				"Adjust the price",
				"Add more features",
			},
			FollowUp: "review_and_edit",
		},
		{
			Intent:   "review_and_edit",
			Patterns: []string{"change", "edit", "adjust", "modify", "update"},
			Responses: []string{
				"No problem! I can help you refine any part of the listing. What would you like to change?",
				"Of course! Let's perfect your listing. Which section needs adjustment?",
				"Absolutely! I'm here to help get it exactly right. What needs to be modified?",
			},
			QuickReplies: []string{
				"The description",
				"Property features",
				"Pricing strategy",
				"Room details",
			},
			FollowUp: "specific_edits",
		},
		{
			Intent:   "market_advice",
			Patterns: []string{"market", "price", "competitive", "sell fast", "value"},
			Responses: []string{
				"Great question! Based on similar properties in {neighborhood}, your pricing looks competitive. The key features that will help you sell quickly are {topFeatures}.",
				"Excellent point! Your property has strong market appeal because of {marketAdvantages}. I'd recommend highlighting {keyFeatures} in showings.",
				"Smart thinking! The current market favors properties with {marketFeatures}. Your listing already emphasizes these strengths.",
			},
			Actions: []string{ActionMarketInsights},
		},
		{
			Intent:   "documentation",
			Patterns: []string{"documents", "paperwork", "legal", "disclosure", "permits"},
			Responses: []string{
				"Great question! For a smooth sale, you'll typically need: property deed, recent tax records, HOA documents (if applicable), and any disclosure forms required in your state.",
				"Excellent planning! Key documents include: title information, property tax records, utility bills, any warranties, and local disclosure requirements.",
				"Smart to think ahead! I recommend gathering: ownership documents, recent inspections, utility records, and checking your local disclosure requirements.",
			},
			QuickReplies: []string{
				"I have most documents",
				"Need help with paperwork",
				"What about inspections?",
				"HOA requirements?",
			},
		},
		{
			Intent:   "timeline",
			Patterns: []string{"timeline", "how long", "when", "quickly", "schedule"},
			Responses: []string{
				"Great question! With a well-prepared listing like yours, you can typically expect: 1-2 weeks for market exposure, then showings and offers based on market conditions.",
				"Excellent planning! Timeline usually includes: immediate listing publication, 1-2 weeks for buyer interest, then negotiation and closing (30-45 days typical).",
				"Smart to plan ahead! Your listing is ready to go live immediately. Market response varies, but well-priced properties often see activity within the first week.",
			},
			QuickReplies: []string{
				"List it immediately",
				"Wait for market timing",
				"Schedule showings first",
				"Get professional staging",
			},
		},
	},
	Fallback: model.PatternEntry{
		Intent: FallbackIntent,
		Responses: []string{
			"Thanks! I've noted that. To keep your listing on track, could you tell me a bit more about the property itself?",
		},
		QuickReplies: []string{
			"Property type",
			"Address",
			"Rooms and size",
			"Asking price",
		},
	},
}
