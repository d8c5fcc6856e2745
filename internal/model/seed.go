package model

// DefaultQuestions is the base quiz inserted on startup. Slot order matters:
// the generation prompt reads q1..q11 by position.
func DefaultQuestions() []Question {
	return []Question{
		{ID: "q1", Text: "عطر دلخواه تو چه حسی رو باید منتقل کنه؟", Type: QuestionSingle,
			Options: []string{"شاد و پرانرژی", "آرامش‌بخش", "رازآلود و اغواگر", "کلاسیک و شیک"}},
		{ID: "q2", Text: "این عطر برای کدوم فصل طراحی بشه؟", Type: QuestionSingle,
			Options: []string{"بهار", "تابستان", "پاییز", "زمستان"}},
		{ID: "q3", Text: "کدوم دسته از بوها برات جذاب‌تره؟", Type: QuestionMultiple,
			Options: []string{"میوه‌ای", "گلی", "چوبی", "ادویه‌ای"}},
		{ID: "q4", Text: "عطری می‌خوای که تو رو به یاد کجا بندازه؟", Type: QuestionSingle,
			Options: []string{"طبیعت", "ساحل", "شهر", "کوهستان"}},
		{ID: "q5", Text: "این عطر رو بیشتر برای چه موقعیتی می‌خوای؟", Type: QuestionSingle,
			Options: []string{"استفاده روزمره", "مجالس رسمی", "قرار ملاقات", "لحظات خاص"}},
		{ID: "q6", Text: "دوست داری عطرت چقدر قوی باشه؟", Type: QuestionSingle,
			Options: []string{"سبک و ملایم", "متوسط", "قوی و برجسته"}},
		{ID: "q7", Text: "ماندگاری عطر برات چقدر مهمه؟", Type: QuestionSingle,
			Options: []string{"کم (1-3 ساعت)", "متوسط (3-6 ساعت)", "زیاد (بیش از 6 ساعت)"}},
		{ID: "q8", Text: "آیا بوی خاصی هست که تو رو یاد خاطره یا لحظه‌ای بیندازه؟", Type: QuestionText,
			Options: []string{}},
		{ID: "q9", Text: "دوست داری عطر تو چه چیزی درباره شخصیتت بگه؟", Type: QuestionSingle,
			Options: []string{"جسور", "خلاق", "آرام", "اجتماعی"}},
		{ID: "q10", Text: "چه رنگی بیشتر با حس عطر دلخواهت هم‌خوانی داره؟", Type: QuestionSingle,
			Options: []string{"قرمز", "آبی", "سبز", "زرد"}},
		{ID: "q11", Text: "کدام عطرهایی که قبلاً استفاده کردی یا دوست داشتی؟", Type: QuestionText,
			Options: []string{}},
	}
}
