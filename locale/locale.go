// Package locale holds the static bilingual string table for the chat widget.
package locale

import "fmt"

// Language selects one of the two supported string tables.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Parse validates a raw language value from the wire.
func Parse(raw string) (Language, error) {
	switch Language(raw) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	}
	return "", fmt.Errorf("unsupported language %q", raw)
}

// Direction returns the text direction for the language.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Strings is the full set of user-visible labels for one language.
type Strings struct {
	Title             string
	Subtitle          string
	Welcome           string
	CalcPrice         string
	BookNow           string
	Tips              string
	Upload            string
	Contact           string
	SelectType        string
	SelectClean       string
	Calculate         string
	Total             string
	FillDetails       string
	Name              string
	Phone             string
	Area              string
	Date              string
	CleanerPref       string
	AnyCrew           string
	FemaleCrew        string
	MaleCrew          string
	Confirm           string
	Payment           string
	Back              string
	ChatPlaceholder   string
	PaymentLink       string
	ServiceFee        string
	Success           string
	RateService       string
	RateTitle         string
	RateDesc          string
	RatingPlaceholder string
	SubmitRating      string
	RatingThanks      string
	Apology           string
	PaymentNotDone    string
	Stars             [5]string
	TipsPrompt        string
	ContactPrompt     string
}

var tables = map[Language]Strings{
	English: {
		Title:             "Clean Hurghada",
		Subtitle:          "Your Red Sea Cleaning Expert",
		Welcome:           "Hello! I'm your cleaning assistant in Hurghada. How can I help?",
		CalcPrice:         "Calculate Price",
		BookNow:           "Book Cleaning",
		Tips:              "Stain Tips",
		Upload:            "Upload Photo",
		Contact:           "Contact Us",
		SelectType:        "Select Property",
		SelectClean:       "Cleaning Type",
		Calculate:         "Get Quote",
		Total:             "Estimated Total",
		FillDetails:       "Enter Booking Details",
		Name:              "Name",
		Phone:             "Phone (WhatsApp)",
		Area:              "Area (e.g. El Kawther)",
		Date:              "Preferred Date",
		CleanerPref:       "Cleaner Preference",
		AnyCrew:           "Any Professional Crew",
		FemaleCrew:        "Female Cleaners (Housekeeping)",
		MaleCrew:          "Male Cleaners (Heavy Duty)",
		Confirm:           "Confirm Booking",
		Payment:           "Proceed to Payment",
		Back:              "Back",
		ChatPlaceholder:   "Ask me anything...",
		PaymentLink:       "Pay via Vodafone Cash / Paymob",
		ServiceFee:        "Includes 15% service fee",
		Success:           "Booking Confirmed! We will contact you shortly.",
		RateService:       "Rate Service",
		RateTitle:         "Rate Your Experience",
		RateDesc:          "How was the cleaning quality?",
		RatingPlaceholder: "Tell us more about the service...",
		SubmitRating:      "Submit Feedback",
		RatingThanks:      "Thank you! We've recorded your feedback.",
		Apology:           "I apologize, something went wrong. Please check your connection.",
		PaymentNotDone:    "Payment was not confirmed. Please try again or contact support.",
		Stars:             [5]string{"Poor", "Fair", "Good", "Very Good", "Excellent"},
		TipsPrompt:        "Can you give me stain removal tips?",
		ContactPrompt:     "How can I contact support?",
	},
	Arabic: {
		Title:             "تنظيف الغردقة",
		Subtitle:          "خبير التنظيف في البحر الأحمر",
		Welcome:           "مرحبا! أنا بوت التنظيف في الغردقة. كيف يمكنني مساعدتك؟",
		CalcPrice:         "احسب السعر",
		BookNow:           "احجز تنظيف",
		Tips:              "نصائح البقع",
		Upload:            "رفع صورة",
		Contact:           "اتصل بنا",
		SelectType:        "اختر العقار",
		SelectClean:       "نوع التنظيف",
		Calculate:         "احسب التكلفة",
		Total:             "الإجمالي التقديري",
		FillDetails:       "أدخل تفاصيل الحجز",
		Name:              "الاسم",
		Phone:             "رقم الهاتف (واتساب)",
		Area:              "المنطقة (مثلاً الكوثر)",
		Date:              "الموعد المفضل",
		CleanerPref:       "تفضيل طاقم العمل",
		AnyCrew:           "أي طاقم محترف",
		FemaleCrew:        "عاملات نظافة (للمنازل)",
		MaleCrew:          "عمال نظافة (للأعمال الشاقة)",
		Confirm:           "تأكيد الحجز",
		Payment:           "انتقل للدفع",
		Back:              "عودة",
		ChatPlaceholder:   "اسألني أي شيء...",
		PaymentLink:       "ادفع عبر فودافون كاش / Paymob",
		ServiceFee:        "شامل 15% رسوم خدمة",
		Success:           "تم تأكيد الحجز! سنتواصل معك قريباً.",
		RateService:       "قيم الخدمة",
		RateTitle:         "قيم تجربتك",
		RateDesc:          "كيف كانت جودة التنظيف؟",
		RatingPlaceholder: "أخبرنا المزيد عن الخدمة...",
		SubmitRating:      "إرسال التقييم",
		RatingThanks:      "شكراً لك! تم تسجيل ملاحظاتك.",
		Apology:           "أعتذر، حدث خطأ ما. يرجى التحقق من الاتصال.",
		PaymentNotDone:    "لم يتم تأكيد الدفع. حاول مرة أخرى أو تواصل مع الدعم.",
		Stars:             [5]string{"سيء", "مقبول", "جيد", "جيد جداً", "ممتاز"},
		TipsPrompt:        "ممكن نصائح لإزالة البقع؟",
		ContactPrompt:     "كيف اتصل بالدعم؟",
	},
}

// T returns the string table for the language. Unknown values fall back to
// English so a corrupted session never renders blank labels.
func T(l Language) Strings {
	if s, ok := tables[l]; ok {
		return s
	}
	return tables[English]
}

// StarLabel returns the adjective for a 1..5 star rating.
func (l Language) StarLabel(stars int) string {
	if stars < 1 || stars > 5 {
		return ""
	}
	return T(l).Stars[stars-1]
}

// Greeting is the bilingual first message of every conversation.
const Greeting = "مرحبا! أنا بوت التنظيف في الغردقة 🧹✨ Hello! I'm your cleaning assistant in Hurghada. How can I help? (Apartments, villas, Airbnb turnover)"
