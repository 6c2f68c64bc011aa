package usecase

// Log prefixes
const (
	LogPrefixHandleMessage = "internal.assistant.usecase.HandleMessage"
	LogPrefixExecute       = "internal.assistant.usecase.Execute"
)

// Static replies. WhatsApp renders *text* as bold.
const (
	ReplyUnknown = "Sorry, I didn't catch that. Send *help* to see what I can do."

	ReplyApology = "Something went wrong on my side. Please try again in a moment."

	ReplyOnboard = `Hi, I'm Adjnt! Here's what I can do:

*Vault*
- "add 3 eggs to Safeway" - save items
- "list" - show your vault
- "remove 2 eggs" / "delete all eggs" - remove items
- "clear Safeway" / "clear list" - empty a store or everything
- "move bread from General to Costco" - relocate items

*Reminders*
- "remind me in 30 minutes to call mom"
- "meet Jaideep on Saturday at 2pm"
- "standup every weekday at 9am"
- "list reminders" / "cancel dentist appointment"
- "move meeting to 4pm" - change a reminder's time

Just type naturally, I'll figure it out.`

	ReplyVaultEmpty   = "Your vault is empty."
	ReplyNoReminders  = "You have no reminders scheduled."
	ReplyTimeTemplate = "It's %s here (%s)."
)
