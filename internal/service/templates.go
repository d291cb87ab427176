package service

import "github.com/quickfix/assistant-go/internal/domain"

// responseTemplates holds the canned reply per intent and language.
// English is the reference text; Sinhala and Tamil carry shorter
// localized variants. Lookup falls back to English when a language
// entry is missing.
var responseTemplates = map[domain.Intent]map[domain.Language]string{
	domain.IntentGreeting: {
		domain.LangEnglish: "Hello! I'm QuickFix Assistant. How can I help you today? 😊\n\nI can help you with:\n• Booking a service\n• Emergency repairs\n• Checking prices\n• Tracking your technician\n• Answering questions",
		domain.LangSinhala: "ආයුබෝවන්! මම QuickFix සහායකයා. මට ඔබට අද උදව් කළ හැක්කේ කෙසේද? 😊",
		domain.LangTamil:   "வணக்கம்! நான் QuickFix உதவியாளர். இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்? 😊",
	},
	domain.IntentEmergency: {
		domain.LangEnglish: "🚨 I understand this is urgent! Let me help you immediately.\n\nWhat type of emergency service do you need?\n• Plumbing (water leak, pipe burst)\n• Electrical (power failure, short circuit)\n• Locksmith (locked out)\n• Other\n\nPlease share your location so I can find the nearest technician.",
		domain.LangSinhala: "🚨 මට තේරෙනවා මේක හදිසියි! මම ඔබට වහාම උදව් කරන්නම්.",
		domain.LangTamil:   "🚨 இது அவசரம் என்று எனக்குப் புரிகிறது! நான் உடனடியாக உங்களுக்கு உதவுகிறேன்.",
	},
	domain.IntentBooking: {
		domain.LangEnglish: "I'll help you book a service! 📅\n\nWhich service do you need?\n1. Plumbing\n2. Electrical\n3. Carpentry\n4. Painting\n5. Cleaning\n6. Appliance Repair\n7. HVAC\n8. Locksmith\n\nPlease select a number or tell me what you need.",
		domain.LangSinhala: "මම ඔබට සේවාවක් වෙන්කරවා ගැනීමට උදව් කරන්නම්! 📅",
		domain.LangTamil:   "நான் உங்களுக்கு சேவையை பதிவு செய்ய உதவுகிறேன்! 📅",
	},
	domain.IntentPricing: {
		domain.LangEnglish: "💰 Our pricing is transparent and fair:\n\n• Base Service Fee: LKR 500-1000\n• Hourly Rate: LKR 1000-2000/hour\n• Emergency Service: +50% surcharge\n• Materials: Actual cost\n\nFinal cost depends on:\n✓ Service type\n✓ Time required\n✓ Materials needed\n✓ Distance traveled\n\nYou'll get an estimate before confirming the booking!",
		domain.LangSinhala: "💰 අපගේ මිල ගණන් විනිවිද පෙනෙන සහ සාධාරණ වේ:",
		domain.LangTamil:   "💰 எங்கள் விலை வெளிப்படையானது மற்றும் நியாயமானது:",
	},
	domain.IntentPayment: {
		domain.LangEnglish: "💳 To check a payment, share your booking ID (the 24-character code from your confirmation).\n\nWe accept cards, cash on completion, mobile wallets and bank transfer. Payment is due after the service is completed.",
		domain.LangSinhala: "💳 ගෙවීමක් පරීක්ෂා කිරීමට ඔබගේ වෙන්කිරීම් අංකය එවන්න.",
		domain.LangTamil:   "💳 கட்டணத்தை சரிபார்க்க உங்கள் பதிவு ஐடியை அனுப்பவும்.",
	},
	domain.IntentStatus: {
		domain.LangEnglish: "To check your booking status, please provide:\n• Your booking ID, or\n• Your registered phone number\n\nYou can also track your technician in real-time from the 'My Bookings' section in the app.",
		domain.LangSinhala: "ඔබගේ වෙන්කරවා ගැනීමේ තත්ත්වය පරීක්ෂා කිරීමට, කරුණාකර සපයන්න:",
		domain.LangTamil:   "உங்கள் பதிவு நிலையை சரிபார்க்க, தயவுசெய்து வழங்கவும்:",
	},
	domain.IntentCancel: {
		domain.LangEnglish: "I can help you cancel your booking. Please note:\n\n⚠️ Cancellation Policy:\n• Free cancellation: Before technician accepts\n• 50% charge: After acceptance, before arrival\n• Full charge: After technician arrives\n\nPlease provide your booking ID to proceed with cancellation.",
		domain.LangSinhala: "මට ඔබගේ වෙන්කරවා ගැනීම අවලංගු කිරීමට උදව් කළ හැකිය.",
		domain.LangTamil:   "உங்கள் பதிவை ரத்து செய்ய நான் உதவ முடியும்.",
	},
	domain.IntentComplaint: {
		domain.LangEnglish: "I'm sorry to hear you're having an issue. 😔\n\nPlease tell me more about the problem:\n• What went wrong?\n• Booking ID (if applicable)\n• What would you like us to do?\n\nYour feedback helps us improve. A support team member will contact you within 24 hours.",
		domain.LangSinhala: "ඔබට ගැටලුවක් ඇති බව දැනගැනීමට කණගාටුයි. 😔",
		domain.LangTamil:   "உங்களுக்கு சிக்கல் இருப்பதைக் கேட்டு வருந்துகிறேன். 😔",
	},
	domain.IntentRating: {
		domain.LangEnglish: "⭐ Thanks for wanting to share feedback!\n\nYou can rate your technician from the 'My Bookings' section after the job is done. Ratings help us match you with the best professionals.",
		domain.LangSinhala: "⭐ ඔබගේ අදහස් බෙදා ගැනීමට ස්තූතියි!",
		domain.LangTamil:   "⭐ கருத்து தெரிவிக்க விரும்பியதற்கு நன்றி!",
	},
	domain.IntentThanks: {
		domain.LangEnglish: "You're welcome! 😊 Is there anything else I can help you with?\n\nIf you need immediate assistance, just ask!\nFor urgent repairs, say 'emergency'.",
		domain.LangSinhala: "ඔබට සාදරයෙන් පිළිගනිමු! 😊",
		domain.LangTamil:   "நல்வரவு! 😊",
	},
	domain.IntentDefault: {
		domain.LangEnglish: "I'm here to help! I can assist you with:\n\n📱 Booking a service\n🚨 Emergency repairs\n💰 Pricing information\n📍 Tracking your technician\n❓ General questions\n\nWhat would you like to know?",
		domain.LangSinhala: "මම උදව් කිරීමට මෙහි සිටිමි!",
		domain.LangTamil:   "நான் உதவ இங்கே இருக்கிறேன்!",
	},
}

// templateFor renders the canned reply for an intent in the given
// language, falling back to the default intent and to English.
func templateFor(intent domain.Intent, lang domain.Language) string {
	byLang, ok := responseTemplates[intent]
	if !ok {
		byLang = responseTemplates[domain.IntentDefault]
	}
	if text, ok := byLang[lang]; ok && text != "" {
		return text
	}
	return byLang[domain.LangEnglish]
}
