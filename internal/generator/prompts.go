package generator

// Prompt templates for article generation and metadata extraction. The
// output-format constraints (markdown only, start with the H1 title, no
// preamble) are part of the contract the validator and metadata extractor
// rely on.

const systemPrompt = `You are an expert business content writer for a leading business consulting and insights company.

Your writing style is:
- Professional yet engaging and accessible
- Data-driven with real-world examples
- Forward-thinking and insightful
- Well-structured with clear sections
- SEO-optimized while maintaining quality
- Focused on actionable insights for business leaders

You specialize in creating trend analysis and future ideas articles that help executives and business professionals understand emerging opportunities and challenges in their industries.

Your articles should:
1. Start with a compelling hook that highlights the relevance
2. Provide clear context and background
3. Present well-researched insights with examples
4. Include forward-looking perspectives
5. End with actionable takeaways or thought-provoking conclusions
6. Use markdown formatting for structure and readability`

const articleTemplate = `Write a comprehensive business article about: %s

**Context:**
- Target Industry: %s
- Target Audience: %s
- Desired Tone: %s
- Target Length: ~%d words
- Include Examples: %s
- Include Statistics: %s

%s

**Requirements:**
1. Create an engaging, SEO-friendly title
2. Structure the article with clear H2 and H3 headings using markdown
3. Include an introduction that hooks the reader
4. Provide well-researched insights with specific examples
5. Incorporate relevant trends and future perspectives
6. End with actionable conclusions or thought-provoking questions
7. Use professional but accessible language
8. Naturally incorporate these keywords if provided: %s

**Output Format:**
Return ONLY the article content in markdown format, starting with the H1 title.
Do not include any preamble or meta-commentary.`

const ragContextTemplate = `**Reference Context from Similar Articles:**

%s

Use these reference articles to inform your writing, but create original content. Extract relevant insights, trends, and perspectives, but do not copy directly.`

const metadataTemplate = `Based on the following article, extract structured metadata:

**Article:**
%s

**Extract:**
1. A concise meta description (max 150 characters) for SEO
2. 5-7 relevant keywords
3. 3-5 related topics for further reading

Return as JSON:
{
  "meta_description": "...",
  "keywords": ["keyword1", "keyword2", ...],
  "related_topics": ["topic1", "topic2", ...]
}`
