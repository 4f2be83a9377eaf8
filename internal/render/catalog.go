package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the en-US text.
const (
	msgWelcome          = "Welcome to the Mastermind Game!"
	msgMenu             = "Main Menu:\n1) New Game\n2) Load Game\n3) Toggle Cheat Mode (Now: %s)\n4) Exit\nChoose 1-4: "
	msgOn               = "ON"
	msgOff              = "OFF"
	msgDifficultyMenu   = "Select Difficulty:\n1) Easy (3 digits, no repeats)\n2) Medium (4 digits, no repeats)\n3) Hard (5 digits, repeats allowed)\nChoose 1-3: "
	msgModeMenu         = "Mode:\n1) User vs Computer (random code)\n2) User vs User (manual code)\nChoose 1-2: "
	msgRules            = "Game Rules:\n- A secret code of %d digits (each 1-6).\n- You have %d tries to guess the code.\n- Feedback: Red = correct digit & position; White = correct digit, wrong position.\n"
	msgDifficulty       = "Difficulty: %s"
	msgMode             = "Mode: %s"
	msgAttemptsAllowed  = "Attempts Allowed: %d"
	msgVsComputer       = "User vs Computer"
	msgVsHuman          = "User vs User"
	msgEasy             = "Easy"
	msgMedium           = "Medium"
	msgHard             = "Hard"
	msgHardRepeats      = "Hard (repeats)"
	msgCustom           = "Custom"
	msgCheatSecret      = "[CHEAT] Secret: %s"
	msgGuessPrompt      = "Enter your guess (%d digits 1-6), or type 'save', 'cheat', or 'quit': "
	msgFeedback         = "Red: %s, White: %s"
	msgAttemptsLeft     = "Attempts left: %d"
	msgWon              = "You cracked the code!\nAttempts used: %d\nTime taken: %d seconds"
	msgLost             = "You ran out of attempts. The code was: %s"
	msgCheatNow         = "Cheat is now %s"
	msgCheatDefault     = "Cheat default is now %s"
	msgSaved            = "Game saved to '%s'.\nReturning to menu..."
	msgSaveFailed       = "Failed to save the game: %v"
	msgQuit             = "Quit to menu without saving."
	msgErrLength        = "Invalid code: expected %d digits, got %d."
	msgErrDigit         = "Invalid code: '%s' is not a digit from 1 to 6."
	msgErrRepeat        = "Invalid code: digit %c is repeated."
	msgHintRepeats      = "Please enter exactly %d digits (1-6) (repeats allowed)."
	msgHintNoRepeats    = "Please enter exactly %d digits (1-6) (no repeats)."
	msgSecretPrompt     = "Enter the secret code for Player 2 (%d digits 1-6)%s: "
	msgRepeatsAllowed   = " (repeats allowed)"
	msgNoRepeats        = " (no repeats)"
	msgNewSecretPrompt  = "Enter a new secret code for Player 2: "
	msgTryAgain         = "Invalid code. Try again: "
	msgPlayAgain        = "Play again with same settings? (y/n): "
	msgNoSave           = "No save file found."
	msgUnsupportedSave  = "Unsupported save file."
	msgCorruptedSave    = "Corrupted save file."
	msgLoadFailed       = "Could not read the save file: %v"
	msgLoaded           = "Game loaded. Resuming..."
	msgInvalidChoice    = "Invalid choice. Try again."
	msgGoodbye          = "Goodbye!"
	msgDailyBanner      = "Daily code for %s."
	msgDailyPlayed      = "You already finished the daily code for %s."
	msgSummary          = "Games played: %d\nGames won: %d\nBest attempts: %d\nBest time: %d seconds"
	msgLeaderboardTitle = "Daily leaderboard %s:"
	msgLeaderboardRow   = "%2d. %s  %d attempts  %d seconds"
	msgLeaderboardEmpty = "No daily wins yet."
)

var spanish = map[string]string{
	msgWelcome:          "¡Bienvenido a Mastermind!",
	msgMenu:             "Menú principal:\n1) Nueva partida\n2) Cargar partida\n3) Modo trampa (ahora: %s)\n4) Salir\nElige 1-4: ",
	msgOn:               "SÍ",
	msgOff:              "NO",
	msgDifficultyMenu:   "Dificultad:\n1) Fácil (3 dígitos, sin repetir)\n2) Media (4 dígitos, sin repetir)\n3) Difícil (5 dígitos, con repeticiones)\nElige 1-3: ",
	msgModeMenu:         "Modo:\n1) Jugador contra ordenador (código aleatorio)\n2) Jugador contra jugador (código manual)\nElige 1-2: ",
	msgRules:            "Reglas:\n- Un código secreto de %d dígitos (cada uno del 1 al 6).\n- Tienes %d intentos para adivinarlo.\n- Pistas: Rojo = dígito y posición correctos; Blanco = dígito correcto en otra posición.\n",
	msgDifficulty:       "Dificultad: %s",
	msgMode:             "Modo: %s",
	msgAttemptsAllowed:  "Intentos permitidos: %d",
	msgVsComputer:       "Jugador contra ordenador",
	msgVsHuman:          "Jugador contra jugador",
	msgEasy:             "Fácil",
	msgMedium:           "Media",
	msgHard:             "Difícil",
	msgHardRepeats:      "Difícil (con repeticiones)",
	msgCustom:           "Personalizada",
	msgCheatSecret:      "[TRAMPA] Secreto: %s",
	msgGuessPrompt:      "Introduce tu intento (%d dígitos del 1 al 6), o escribe 'save', 'cheat' o 'quit': ",
	msgFeedback:         "Rojo: %s, Blanco: %s",
	msgAttemptsLeft:     "Intentos restantes: %d",
	msgWon:              "¡Has descifrado el código!\nIntentos usados: %d\nTiempo: %d segundos",
	msgLost:             "Te quedaste sin intentos. El código era: %s",
	msgCheatNow:         "Modo trampa: %s",
	msgCheatDefault:     "Modo trampa por defecto: %s",
	msgSaved:            "Partida guardada en '%s'.\nVolviendo al menú...",
	msgSaveFailed:       "No se pudo guardar la partida: %v",
	msgQuit:             "Saliendo al menú sin guardar.",
	msgErrLength:        "Código no válido: se esperaban %d dígitos, hay %d.",
	msgErrDigit:         "Código no válido: '%s' no es un dígito del 1 al 6.",
	msgErrRepeat:        "Código no válido: el dígito %c está repetido.",
	msgHintRepeats:      "Introduce exactamente %d dígitos (1-6) (se permiten repeticiones).",
	msgHintNoRepeats:    "Introduce exactamente %d dígitos (1-6) (sin repetir).",
	msgSecretPrompt:     "Introduce el código secreto para el jugador 2 (%d dígitos 1-6)%s: ",
	msgRepeatsAllowed:   " (con repeticiones)",
	msgNoRepeats:        " (sin repetir)",
	msgNewSecretPrompt:  "Introduce un nuevo código secreto para el jugador 2: ",
	msgTryAgain:         "Código no válido. Inténtalo de nuevo: ",
	msgPlayAgain:        "¿Jugar otra vez con la misma configuración? (y/n): ",
	msgNoSave:           "No hay partida guardada.",
	msgUnsupportedSave:  "Formato de guardado no compatible.",
	msgCorruptedSave:    "Archivo de guardado dañado.",
	msgLoadFailed:       "No se pudo leer el archivo de guardado: %v",
	msgLoaded:           "Partida cargada. Continuando...",
	msgInvalidChoice:    "Opción no válida. Inténtalo de nuevo.",
	msgGoodbye:          "¡Adiós!",
	msgDailyBanner:      "Código del día %s.",
	msgDailyPlayed:      "Ya terminaste el código del día %s.",
	msgSummary:          "Partidas jugadas: %d\nPartidas ganadas: %d\nMenos intentos: %d\nMejor tiempo: %d segundos",
	msgLeaderboardTitle: "Clasificación del día %s:",
	msgLeaderboardRow:   "%2d. %s  %d intentos  %d segundos",
	msgLeaderboardEmpty: "Todavía no hay victorias hoy.",
}

var supported = []language.Tag{language.AmericanEnglish, language.Spanish}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for key, text := range spanish {
		// keys are constants; SetString only fails on malformed tags
		_ = b.SetString(language.Spanish, key, text)
	}
	return b
}

// printerFor resolves a BCP 47 string to the closest supported catalog.
func printerFor(lang string) *message.Printer {
	tag, _ := language.Parse(lang)
	_, idx, _ := language.NewMatcher(supported).Match(tag)
	return message.NewPrinter(supported[idx], message.Catalog(messages))
}
