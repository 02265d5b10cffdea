package promptblog

// DefaultBaseURL is the production origin of the blog.
const DefaultBaseURL = "https://aimusicprompter.com"

// DefaultPosts returns the compiled-in post collection with canonical URLs
// rooted at baseURL. Each call returns a fresh slice.
func DefaultPosts(baseURL string) []BlogPost {
	posts := []BlogPost{
		{
			ID:              "1",
			Title:           "The Complete Guide to Writing AI Music Prompts",
			Slug:            "complete-guide-ai-music-prompts",
			Excerpt:         "Learn the building blocks of an effective AI music prompt: genre, mood, instrumentation, tempo and vocals.",
			MetaDescription: "A step-by-step guide to writing AI music prompts for Suno, Udio and other generators, with examples for every genre.",
			Author:          "AI Music Prompter Team",
			PublishDate:     "2024-01-15",
			LastModified:    "2024-03-02",
			Tags:            []string{"prompt writing", "beginners", "suno", "udio"},
			Category:        "Tutorials",
			ReadTime:        8,
			Featured:        true,
			Keywords:        []string{"AI music prompts", "how to write music prompts", "Suno prompt guide", "Udio prompt guide"},
			Image:           "/images/blog/complete-guide.jpg",
			Content: `## Why prompts matter

An AI music generator only knows what you tell it. A vague prompt like "a cool song" leaves every decision to the model, and the result is usually generic. A **specific** prompt turns the model into a collaborator.

## The five building blocks

- **Genre**: start with one primary genre and at most one influence, e.g. "synthwave with funk influences".
- **Mood**: describe the feeling, e.g. "nostalgic, driving, late-night".
- **Instrumentation**: name two to four lead instruments, e.g. "analog bass, gated drums, bright arpeggios".
- **Tempo**: give a BPM range or a feel, e.g. "110 BPM, steady groove".
- **Vocals**: say whether you want vocals, their gender and their delivery, or write "instrumental".

## Putting it together

"Nostalgic synthwave with funk influences, analog bass, gated drums and bright arpeggios, 110 BPM, breathy female vocals" is short, concrete and leaves the model room to be creative inside your frame.

## Iterate

Generate three variations, keep the best one, and change a single building block at a time. Small edits teach you how the model interprets each word.`,
		},
		{
			ID:              "2",
			Title:           "10 Suno Prompt Tricks for Better Vocals",
			Slug:            "suno-prompt-tricks-better-vocals",
			Excerpt:         "Ten practical techniques to get clearer, more expressive vocals out of Suno.",
			MetaDescription: "Improve vocal quality in Suno with ten tested prompt tricks covering delivery, harmonies, lyrics formatting and more.",
			Author:          "Maya Chen",
			PublishDate:     "2024-02-03",
			LastModified:    "2024-02-03",
			Tags:            []string{"suno", "vocals", "advanced"},
			Category:        "Tips & Tricks",
			ReadTime:        6,
			Featured:        true,
			Keywords:        []string{"Suno vocals", "Suno prompt tips", "AI singing"},
			Image:           "/images/blog/suno-vocals.jpg",
			Content: `## Describe the delivery

Words like "intimate", "belted" or "spoken-word" shape a vocal more than naming a famous singer ever will.

## Format your lyrics

Use [Verse], [Chorus] and [Bridge] markers. Suno follows structure tags closely, and short lines are sung more clearly than long ones.

## Ask for harmonies explicitly

"Stacked harmonies in the chorus" or "call and response backing vocals" add depth without cluttering the verse.

## Keep the mix in mind

If vocals get buried, remove one instrument from the prompt. Fewer elements leave more room in the mix.

## More tricks

Match syllable counts between verses, avoid tongue-twisters, spell out numbers, put the hook in the first chorus line, and regenerate only the section that failed.`,
		},
		{
			ID:              "3",
			Title:           "Lo-Fi Hip Hop Prompts: A Genre Deep Dive",
			Slug:            "lofi-hip-hop-prompts-genre-guide",
			Excerpt:         "Everything you need to prompt authentic lo-fi beats: textures, drums, chords and ambience.",
			MetaDescription: "Generate authentic lo-fi hip hop with AI. Prompt templates for dusty drums, jazzy chords, vinyl crackle and study-beat ambience.",
			Author:          "Jordan Reyes",
			PublishDate:     "2024-02-20",
			LastModified:    "2024-04-11",
			Tags:            []string{"lo-fi", "hip hop", "genre guide", "udio"},
			Category:        "Genre Guides",
			ReadTime:        7,
			Featured:        false,
			Keywords:        []string{"lofi AI music", "lo-fi hip hop prompt", "study beats AI"},
			Content: `## What makes lo-fi

Lo-fi hip hop lives in its imperfections: swung drums, detuned keys, tape saturation and vinyl noise.

## A starter prompt

"Lo-fi hip hop, dusty boom bap drums, jazzy Rhodes chords, vinyl crackle, rain ambience, 75 BPM, instrumental, relaxed and warm"

## Variations

- Swap "Rhodes" for "nylon guitar" for a bossa flavor.
- Add "sidechained pads" for a modern chillhop feel.
- Use "cassette wobble" when the result sounds too clean.

## Common mistakes

Asking for "high quality" or "crisp" works against the genre. Lean into words like "warm", "muffled" and "nostalgic" instead.`,
		},
		{
			ID:              "4",
			Title:           "Suno vs Udio: Which AI Music Generator Fits Your Workflow?",
			Slug:            "suno-vs-udio-comparison",
			Excerpt:         "A hands-on comparison of Suno and Udio covering sound quality, prompt control, editing and pricing.",
			MetaDescription: "Suno vs Udio compared: sound quality, prompt adherence, song editing tools and pricing, with recommendations for different creators.",
			Author:          "AI Music Prompter Team",
			PublishDate:     "2024-03-08",
			LastModified:    "2024-03-08",
			Tags:            []string{"suno", "udio", "comparison"},
			Category:        "Platform Reviews",
			ReadTime:        9,
			Featured:        true,
			Keywords:        []string{"Suno vs Udio", "best AI music generator", "AI music generator comparison"},
			Image:           "/images/blog/suno-vs-udio.jpg",
			Content: `## The short answer

Suno is faster to a finished song. Udio gives you finer control over sound design. Many creators use both.

## Prompt adherence

Suno follows style tags and lyric structure reliably. Udio rewards longer descriptive prompts and responds better to production vocabulary.

## Editing

Udio's extend and remix tools make it easy to build a track section by section. Suno's strength is generating complete songs in one pass.

## Pricing

Both offer free tiers with daily credits and paid plans with commercial rights. Check the current terms before publishing.

## Our recommendation

Draft the idea in Suno, then refine the best sections in Udio. AI Music Prompter formats one prompt for both.`,
		},
		{
			ID:              "5",
			Title:           "Writing Prompts for Cinematic Soundtracks",
			Slug:            "cinematic-soundtrack-prompts",
			Excerpt:         "How to describe orchestration, dynamics and story so AI generators produce film-ready scores.",
			MetaDescription: "Create cinematic AI soundtracks with prompts that describe orchestration, dynamics and narrative arc. Includes trailer and ambient examples.",
			Author:          "Maya Chen",
			PublishDate:     "2024-03-22",
			LastModified:    "2024-05-01",
			Tags:            []string{"cinematic", "orchestral", "genre guide"},
			Category:        "Genre Guides",
			ReadTime:        6,
			Featured:        false,
			Keywords:        []string{"cinematic AI music", "AI film score", "orchestral prompts"},
			Content: `## Think in scenes

Describe what happens, not just how it sounds: "a lone explorer crests a dune at sunrise" gives the model a narrative arc.

## Name the orchestra sections

"Low strings ostinato, french horn melody, taiko hits" is far more useful than "epic orchestra".

## Control dynamics

Use words like "builds slowly", "sudden silence" and "swells into a triumphant finale" to shape the structure.

## Trailer template

"Epic cinematic trailer music, pulsing low strings, braams, taiko drums, rising tension, choir in the final section, 90 BPM, instrumental"`,
		},
		{
			ID:              "6",
			Title:           "Prompt Keywords That Actually Change the Mood",
			Slug:            "prompt-keywords-mood",
			Excerpt:         "We tested hundreds of adjectives. These are the mood words AI generators reliably respond to.",
			MetaDescription: "Discover which mood keywords reliably change AI-generated music, based on hundreds of test generations across Suno and Udio.",
			Author:          "Jordan Reyes",
			PublishDate:     "2024-04-05",
			LastModified:    "2024-04-05",
			Tags:            []string{"prompt writing", "mood", "advanced"},
			Category:        "Tips & Tricks",
			ReadTime:        5,
			Featured:        false,
			Keywords:        []string{"music mood keywords", "AI music mood", "prompt adjectives"},
			Content: `## Strong signals

"Melancholic", "euphoric", "tense", "dreamy" and "aggressive" shifted results in almost every test.

## Weak signals

"Beautiful", "amazing" and "professional" barely changed anything. Models treat them as filler.

## Combine contrasting moods carefully

"Bittersweet" works better than "happy and sad". A single precise word beats two opposing ones.

## Pair mood with tempo

Mood words land harder when the tempo agrees: "euphoric, 128 BPM" is consistent, "euphoric, 60 BPM" confuses the model.`,
		},
	}
	return FillURLs(posts, baseURL)
}
