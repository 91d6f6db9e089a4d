package lessons

import (
	"fmt"
	"strings"
)

const systemPrompt = `Je bent een enthousiaste docent die korte oefenlessen maakt voor leerlingen in het Nederlandse onderwijs.

Regels:
- Schrijf alles in het NEDERLANDS.
- Maak meerkeuzevragen die passen bij het opgegeven niveau en de moeilijkheid.
- Elke vraag heeft precies 4 verschillende antwoordopties; precies één daarvan is juist.
- "correctAnswer" is letterlijk gelijk aan de tekst van de juiste optie.
- Foute opties zijn geloofwaardig en weerspiegelen veelgemaakte denkfouten.
- De uitleg is kort (1-2 zinnen) en legt uit waarom het juiste antwoord klopt.
- Geef elke vraag een unieke id ("q1", "q2", ...).
- Herhaal geen vragen binnen dezelfde les.`

// difficultyHint describes a difficulty for the prompt.
func difficultyHint(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "makkelijk (basisbegrippen en herkenning)"
	case DifficultyHard:
		return "moeilijk (toepassen en redeneren)"
	default:
		return "gemiddeld"
	}
}

// buildUserMessage constructs the user message for a lesson request.
func buildUserMessage(req LessonConfig, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Genereer %d educatieve meerkeuzevragen in het NEDERLANDS.\n", count)
	grade := req.GradeLevel
	if grade == "" {
		grade = "onbekend"
	}
	fmt.Fprintf(&b, "Niveau: %s.\n", grade)
	fmt.Fprintf(&b, "Onderwerp: %s.\n", req.Topic)
	fmt.Fprintf(&b, "Moeilijkheid: %s.\n", difficultyHint(req.Difficulty))

	return b.String()
}
