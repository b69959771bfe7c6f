package i18n

var tables = map[Language]map[string]string{
	LangEN: translationsEN,
	LangFR: translationsFR,
	LangHE: translationsHE,
	LangRU: translationsRU,
}

var translationsEN = map[string]string{
	// Navigation
	"nav_home":     "Home",
	"nav_projects": "Projects",
	"nav_contact":  "Contact",

	// Home page
	"home_hero_title":    "Find Your Dream Home in Israel",
	"home_hero_subtitle": "Luxury residences in Jerusalem, Tel Aviv, Haifa and Ashdod",
	"home_cta":           "Browse Projects",
	"home_why_us":        "Why Choose Us",

	// Projects
	"projects_title":    "Our Projects",
	"projects_subtitle": "Exclusive developments across Israel",
	"project_units":     "Available Units",
	"project_brochure":  "Download Brochure",
	"project_map":       "Location",
	"project_inquire":   "Inquire Now",
	"unit_floor":        "Floor",
	"unit_surface":      "Surface",
	"unit_available":    "Available",
	"unit_reserved":     "Reserved",
	"unit_sold":         "Sold",

	// Not found
	"not_found_title": "Project not found",
	"not_found_back":  "Back to projects",

	// Contact form
	"contact_title":  "Contact Us",
	"form_name":      "Full Name",
	"form_email":     "Email",
	"form_phone":     "Phone",
	"form_language":  "Preferred Language",
	"form_project":   "Project of Interest",
	"form_message":   "Message",
	"form_submit":    "Send Message",
	"form_success":   "Thank you! We will contact you shortly.",
	"form_error":     "Something went wrong. Please try again.",
	"form_required":  "This field is required",

	// Footer
	"footer_rights": "All rights reserved",
}

var translationsFR = map[string]string{
	"nav_home":     "Accueil",
	"nav_projects": "Projets",
	"nav_contact":  "Contact",

	"home_hero_title":    "Trouvez la maison de vos rêves en Israël",
	"home_hero_subtitle": "Résidences de luxe à Jérusalem, Tel Aviv, Haïfa et Ashdod",
	"home_cta":           "Voir les projets",
	"home_why_us":        "Pourquoi nous choisir",

	"projects_title":    "Nos projets",
	"projects_subtitle": "Développements exclusifs à travers Israël",
	"project_units":     "Unités disponibles",
	"project_brochure":  "Télécharger la brochure",
	"project_map":       "Emplacement",
	"project_inquire":   "Demander des informations",
	"unit_floor":        "Étage",
	"unit_surface":      "Surface",
	"unit_available":    "Disponible",
	"unit_reserved":     "Réservé",
	"unit_sold":         "Vendu",

	"not_found_title": "Projet introuvable",
	"not_found_back":  "Retour aux projets",

	"contact_title":  "Contactez-nous",
	"form_name":      "Nom complet",
	"form_email":     "Email",
	"form_phone":     "Téléphone",
	"form_language":  "Langue préférée",
	"form_project":   "Projet souhaité",
	"form_message":   "Message",
	"form_submit":    "Envoyer",
	"form_success":   "Merci ! Nous vous contacterons très bientôt.",
	"form_error":     "Une erreur est survenue. Veuillez réessayer.",
	"form_required":  "Ce champ est obligatoire",

	"footer_rights": "Tous droits réservés",
}

var translationsHE = map[string]string{
	"nav_home":     "בית",
	"nav_projects": "פרויקטים",
	"nav_contact":  "צור קשר",

	"home_hero_title":    "מצאו את בית חלומותיכם בישראל",
	"home_hero_subtitle": "מגורי יוקרה בירושלים, תל אביב, חיפה ואשדוד",
	"home_cta":           "לצפייה בפרויקטים",
	"home_why_us":        "למה לבחור בנו",

	"projects_title":    "הפרויקטים שלנו",
	"projects_subtitle": "פרויקטים בלעדיים ברחבי ישראל",
	"project_units":     "דירות זמינות",
	"project_brochure":  "להורדת הברושור",
	"project_map":       "מיקום",
	"project_inquire":   "לפרטים נוספים",
	"unit_floor":        "קומה",
	"unit_surface":      "שטח",
	"unit_available":    "זמין",
	"unit_reserved":     "שמור",
	"unit_sold":         "נמכר",

	"not_found_title": "הפרויקט לא נמצא",
	"not_found_back":  "חזרה לפרויקטים",

	"contact_title":  "צרו קשר",
	"form_name":      "שם מלא",
	"form_email":     "אימייל",
	"form_phone":     "טלפון",
	"form_language":  "שפה מועדפת",
	"form_project":   "פרויקט מבוקש",
	"form_message":   "הודעה",
	"form_submit":    "שליחה",
	"form_success":   "תודה! ניצור איתכם קשר בהקדם.",
	"form_error":     "משהו השתבש. אנא נסו שוב.",
	"form_required":  "שדה חובה",

	"footer_rights": "כל הזכויות שמורות",
}

var translationsRU = map[string]string{
	"nav_home":     "Главная",
	"nav_projects": "Проекты",
	"nav_contact":  "Контакты",

	"home_hero_title":    "Найдите дом своей мечты в Израиле",
	"home_hero_subtitle": "Элитные резиденции в Иерусалиме, Тель-Авиве, Хайфе и Ашдоде",
	"home_cta":           "Смотреть проекты",
	"home_why_us":        "Почему выбирают нас",

	"projects_title":    "Наши проекты",
	"projects_subtitle": "Эксклюзивные проекты по всему Израилю",
	"project_units":     "Доступные квартиры",
	"project_brochure":  "Скачать брошюру",
	"project_map":       "Расположение",
	"project_inquire":   "Оставить заявку",
	"unit_floor":        "Этаж",
	"unit_surface":      "Площадь",
	"unit_available":    "Доступно",
	"unit_reserved":     "Забронировано",
	"unit_sold":         "Продано",

	"not_found_title": "Проект не найден",
	"not_found_back":  "Назад к проектам",

	"contact_title":  "Свяжитесь с нами",
	"form_name":      "Полное имя",
	"form_email":     "Электронная почта",
	"form_phone":     "Телефон",
	"form_language":  "Предпочитаемый язык",
	"form_project":   "Интересующий проект",
	"form_message":   "Сообщение",
	"form_submit":    "Отправить",
	"form_success":   "Спасибо! Мы свяжемся с вами в ближайшее время.",
	"form_error":     "Что-то пошло не так. Пожалуйста, попробуйте ещё раз.",
	"form_required":  "Обязательное поле",

	"footer_rights": "Все права защищены",
}
