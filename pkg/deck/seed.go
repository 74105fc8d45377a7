package deck

// CSVHeader is the header row of every deck CSV. The server never parses
// deck content; the header is fixed by the application that consumes it.
const CSVHeader = "Front,Back,Repetitions,EasinessFactor,Interval,NextReviewSession"

// DefaultSeeds returns the three built-in development decks. Fields follow
// the deck CSV conventions: comma-separated, double-quote-escaped, CRLF rows.
func DefaultSeeds() []Seed {
	return []Seed{
		{
			Path: "/anki/Spanish.csv",
			Content: CSVHeader + "\r\n" +
				"Hola,Hello,3,2500,4,12\r\n" +
				"\"Gracias\",\"Thank you\",1,2600,1,10\r\n" +
				"\"¿Cómo estás?\",\"How are you?\",0,2500,0,0\r\n" +
				"\"Buenos días\",\"Good morning\",5,2800,10,20\r\n" +
				"Adiós,Goodbye,2,2400,2,9\r\n",
		},
		{
			Path: "/anki/Japanese.csv",
			Content: CSVHeader + "\r\n" +
				"犬,Dog,4,2600,8,18\r\n" +
				"猫,Cat,2,2500,2,11\r\n" +
				"水,Water,0,2500,0,0\r\n",
		},
		{
			Path: "/anki/Capitals.csv",
			Content: CSVHeader + "\r\n" +
				"France,Paris,6,2900,15,25\r\n" +
				"Japan,Tokyo,4,2700,8,19\r\n" +
				"Brazil,Brasília,1,2500,1,8\r\n" +
				"\"United Kingdom\",London,5,2800,12,22\r\n",
		},
	}
}
