package i18n

var english = map[string]string{
	"window_title":  "Vexo Checker",
	"fetch_button":  "Refresh",
	"ok_button":     "OK",
	"save_button":   "Save",
	"cancel_button": "Cancel",

	"menu_link":          "Subscription link...",
	"manage_link_title":  "Subscription link",
	"manage_link_prompt": "Paste your subscription link:",
	"manage_link_hint":   "To change the subscription link, restart with --url <link>",
	"menu_language":      "Language",
	"menu_quit":          "Quit",
	"menu_logs":          "Open log",
	"menu_clear_logs":    "Clear log",

	"connect_dns_button":       "Connect DNS",
	"disconnect_dns_button":    "Disconnect DNS",
	"fetch_button_loading":     "Checking...",
	"unset_dns_button_loading": "Disconnecting...",

	"username_header": "User: {0}",
	"status_header":   "Status: {0}",
	"time_header":     "Time left: {0}",
	"volume_header":   "Traffic left: {0}",
	"ip_header":       "Last IP: {0}",
	"dns_header":      "DNS: {0}",

	"status_active":   "Active",
	"status_disabled": "Disabled",
	"status_limited":  "Limited",
	"status_expired":  "Expired",
	"unlimited":       "Unlimited",
	"time_format":     "{0} days, {1} hours",

	"connecting_status":          "Connecting...",
	"success_status":             "Subscription data updated",
	"checking_status_before_dns": "Checking subscription before connecting DNS...",
	"dns_connect_denied_status":  "DNS can only be connected while the subscription is active",
	"operation_in_progress":      "Another operation is in progress",

	"error_title":   "Error",
	"warning_title": "Warning",
	"error_url":     "Invalid subscription link",
	"error_connect": "Could not connect to the server",
	"error_unknown": "Unknown error",
	"error_timeout": "The server did not respond in time",

	"warning_add_link_first": "Add a subscription link first",

	"dns_set_success_title":     "DNS connected",
	"dns_set_success_message":   "DNS server {0} is now in use",
	"dns_unset_success_title":   "DNS disconnected",
	"dns_unset_success_message": "DNS settings restored to automatic",
	"dns_set_fail_message":      "Could not change DNS settings. Run the program as administrator.",
	"dns_unset_fail_message":    "Could not restore DNS settings. Run the program as administrator.",
	"no_active_interface":       "No active network interface found",

	"ip_no_change":       "Your IP {0} has not changed",
	"ip_changed_from_to": "IP changed from {0} to {1}",
	"ip_conflict_error":  "This subscription is already used from another IP",
	"ip_update_fail":     "Could not update the IP on the server",
	"ip_not_found":       "Could not determine your public IP",
	"ip_wait_notice":     "Please wait {0} seconds for the new IP to take effect",

	"exit_confirm_title":   "Exit",
	"exit_confirm_dns_set": "DNS will be restored to automatic before exiting",
	"exit_confirm_no_dns":  "Exit Vexo Checker?",
}

var russian = map[string]string{
	"fetch_button":  "Обновить",
	"save_button":   "Сохранить",
	"cancel_button": "Отмена",

	"menu_link":          "Ссылка на подписку...",
	"manage_link_title":  "Ссылка на подписку",
	"manage_link_prompt": "Вставьте ссылку на подписку:",
	"manage_link_hint":   "Чтобы изменить ссылку на подписку, перезапустите с --url <ссылка>",
	"menu_language":      "Язык",
	"menu_quit":          "Выход",
	"menu_logs":          "Открыть журнал",
	"menu_clear_logs":    "Очистить журнал",

	"connect_dns_button":    "Подключить DNS",
	"disconnect_dns_button": "Отключить DNS",

	"status_active":   "Активна",
	"status_disabled": "Отключена",
	"status_limited":  "Ограничена",
	"status_expired":  "Истекла",
	"unlimited":       "Безлимит",
	"time_format":     "{0} дн., {1} ч.",

	"success_status":            "Данные подписки обновлены",
	"dns_connect_denied_status": "DNS можно подключить только при активной подписке",

	"error_title":   "Ошибка",
	"error_url":     "Неверная ссылка на подписку",
	"error_connect": "Не удалось подключиться к серверу",
	"error_unknown": "Неизвестная ошибка",
	"error_timeout": "Сервер не ответил вовремя",

	"dns_set_success_message":   "Используется DNS-сервер {0}",
	"dns_unset_success_message": "Настройки DNS восстановлены",
	"dns_set_fail_message":      "Не удалось изменить DNS. Запустите программу от имени администратора.",
	"dns_unset_fail_message":    "Не удалось восстановить DNS. Запустите программу от имени администратора.",
	"no_active_interface":       "Активный сетевой интерфейс не найден",

	"ip_no_change":       "Ваш IP {0} не изменился",
	"ip_changed_from_to": "IP изменился с {0} на {1}",
	"ip_conflict_error":  "Подписка уже используется с другого IP",
	"ip_update_fail":     "Не удалось обновить IP на сервере",
	"ip_not_found":       "Не удалось определить ваш публичный IP",
	"ip_wait_notice":     "Подождите {0} секунд, пока новый IP вступит в силу",
}
