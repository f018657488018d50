package locale

import "strings"

// DisclaimerMarker flags a reply that already carries the legal
// disclaimer; replies without it get one appended.
const DisclaimerMarker = "⚖️"

// WelcomeMessage is the assistant turn seeded into every new session.
func WelcomeMessage(language string) string {
	return pick(welcomeMessages, language)
}

// FallbackMessage is the assistant turn persisted when the model call
// fails; it replaces the reply, never an exception.
func FallbackMessage(language string) string {
	return pick(fallbackMessages, language)
}

// Disclaimer returns the localized legal disclaimer sentence.
func Disclaimer(language string) string {
	return pick(disclaimers, language)
}

// EnsureDisclaimer appends the localized disclaimer unless the text
// already contains the marker.
func EnsureDisclaimer(text, language string) string {
	if strings.Contains(text, DisclaimerMarker) {
		return text
	}
	return text + Disclaimer(language)
}

var welcomeMessages = map[string]string{
	"en": "Hello! I'm Vakeel Saab AI, your legal assistant powered by advanced AI. I'm here to help you understand your rights and provide legal guidance. What legal question can I help you with today?",
	"hi": "नमस्ते! मैं वकील साब AI हूं, उन्नत AI द्वारा संचालित आपका कानूनी सहायक। मैं यहां आपके अधिकारों को समझने और कानूनी मार्गदर्शन प्रदान करने के लिए हूं। आज मैं आपकी किस कानूनी समस्या में मदद कर सकता हूं?",
	"ta": "வணக்கம்! நான் வகீல் சாப் AI, மேம்பட்ட AI ஆல் இயக்கப்படும் உங்கள் சட்ட உதவியாளர். உங்கள் உரிமைகளைப் புரிந்துகொள்ளவும் சட்ட வழிகாட்டுதலை வழங்கவும் நான் இங்கே இருக்கிறேன். இன்று நான் உங்களுக்கு எந்த சட்டக் கேள்வியில் உதவ முடியும்?",
	"te": "నమస్కారం! నేను వకీల్ సాబ్ AI, అధునాతన AI చే శక్తివంతం చేయబడిన మీ న్యాయ సహాయకుడను. మీ హక్కులను అర్థం చేసుకోవడంలో మరియు న్యాయ మార్గదర్శకత్వం అందించడంలో సహాయం చేయడానికి నేను ఇక్కడ ఉన్నాను. ఈరోజు నేను మీకు ఏ న్యాయ ప్రశ్నలో సహాయం చేయగలను?",
	"bn": "নমস্কার! আমি ভকিল সাহেব AI, উন্নত AI দ্বারা চালিত আপনার আইনি সহায়ক। আমি এখানে আপনার অধিকারগুলি বুঝতে এবং আইনি নির্দেশনা প্রদান করতে সাহায্য করার জন্য আছি। আজ আমি আপনাকে কোন আইনি প্রশ্নে সাহায্য করতে পারি?",
	"kn": "ನಮಸ್ಕಾರ! ನಾನು ವಕೀಲ್ ಸಾಬ್ AI, ಸುಧಾರಿತ AI ಯಿಂದ ಚಾಲಿತ ನಿಮ್ಮ ಕಾನೂನು ಸಹಾಯಕ. ನಿಮ್ಮ ಹಕ್ಕುಗಳನ್ನು ಅರ್ಥಮಾಡಿಕೊಳ್ಳಲು ಮತ್ತು ಕಾನೂನು ಮಾರ್ಗದರ್ಶನ ನೀಡಲು ನಾನು ಇಲ್ಲಿದ್ದೇನೆ. ಇಂದು ನಾನು ನಿಮಗೆ ಯಾವ ಕಾನೂನು ಪ್ರಶ್ನೆಯಲ್ಲಿ ಸಹಾಯ ಮಾಡಬಹುದು?",
	"mr": "नमस्कार! मी वकील साहेब AI आहे, प्रगत AI द्वारे चालवलेला तुमचा कायदेशीर सहाय्यक. तुमचे अधिकार समजून घेण्यासाठी आणि कायदेशीर मार्गदर्शन प्रदान करण्यासाठी मी येथे आहे. आज मी तुम्हाला कोणत्या कायदेशीर प्रश्नात मदत करू शकतो?",
	"gu": "નમસ્તે! હું વકીલ સાહેબ AI છું, અદ્યતન AI દ્વારા સંચાલિત તમારો કાનૂની સહાયક. તમારા અધિકારોને સમજવામાં અને કાનૂની માર્ગદર્શન પ્રદાન કરવામાં મદદ કરવા માટે હું અહીં છું. આજે હું તમને કયા કાનૂની પ્રશ્નમાં મદદ કરી શકું?",
	"pa": "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! ਮੈਂ ਵਕੀਲ ਸਾਹਿਬ AI ਹਾਂ, ਉੱਨਤ AI ਦੁਆਰਾ ਸੰਚਾਲਿਤ ਤੁਹਾਡਾ ਕਾਨੂੰਨੀ ਸਹਾਇਕ। ਮੈਂ ਤੁਹਾਡੇ ਅਧਿਕਾਰਾਂ ਨੂੰ ਸਮਝਣ ਅਤੇ ਕਾਨੂੰਨੀ ਮਾਰਗਦਰਸ਼ਨ ਪ੍ਰਦਾਨ ਕਰਨ ਲਈ ਇੱਥੇ ਹਾਂ। ਅੱਜ ਮੈਂ ਤੁਹਾਡੀ ਕਿਸ ਕਾਨੂੰਨੀ ਸਮੱਸਿਆ ਵਿੱਚ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
	"ur": "السلام علیکم! میں وکیل صاحب AI ہوں، جدید AI کے ذریعے چلنے والا آپ کا قانونی معاون۔ میں یہاں آپ کے حقوق کو سمجھنے اور قانونی رہنمائی فراہم کرنے کے لیے ہوں۔ آج میں آپ کے کس قانونی سوال میں مدد کر سکتا ہوں؟",
}

var fallbackMessages = map[string]string{
	"en": "I apologize, but I'm experiencing technical difficulties right now. Please try again in a moment, or contact our support team for immediate assistance. For urgent legal matters, please call our 24/7 hotline at 1-800-LEGAL-HELP.",
	"hi": "मुझे खेद है, लेकिन मैं अभी तकनीकी कठिनाइयों का सामना कर रहा हूं। कृपया एक क्षण में फिर से कोशिश करें, या तत्काल सहायता के लिए हमारी सहायता टीम से संपर्क करें।",
	"ta": "மன்னிக்கவும், நான் இப்போது தொழில்நுட்ப சிக்கல்களை எதிர்கொள்கிறேன். தயவுசெய்து ஒரு கணம் மீண்டும் முயற்சிக்கவும் அல்லது உடனடி உதவிக்கு எங்கள் ஆதரவு குழுவைத் தொடர்பு கொள்ளவும்.",
}

var disclaimers = map[string]string{
	"en": "\n\n⚖️ Please note: This is general legal information. For specific legal advice, please consult with a qualified attorney.",
	"hi": "\n\n⚖️ कृपया ध्यान दें: यह सामान्य कानूनी जानकारी है। विशिष्ट कानूनी सलाह के लिए एक योग्य वकील से सलाह लें।",
	"ta": "\n\n⚖️ கவனிக்கவும்: இது பொதுவான சட்ட தகவல். குறிப்பிட்ட சட்ட ஆலோசனைக்கு தகுதியான வழக்கறிஞரை அணுகவும்.",
}
