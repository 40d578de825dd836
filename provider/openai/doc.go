/*
Package openai adapts tool definitions to the OpenAI chat completions API.

Tool and Tools build the function tool parameters, HandleToolCalls answers the
tool calls of an assistant message:

	tools, _ := openai.Tools(catalog.All(), true)
	chat, err := client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Messages: oai.F(history),
		Model:    oai.F(oai.ChatModelGPT4oMini),
		Tools:    oai.F(tools),
	})
	msg := chat.Choices[0].Message
	history = append(history, msg)
	history = append(history, openai.HandleToolCalls(ctx, catalog, msg.ToolCalls)...)

Runner wraps that loop:

	r, _ := openai.NewRunner(oai.ChatModelGPT4oMini, catalog.All(), openai.WithStrict(true))
	answer, _, err := r.Run(ctx, "How did Apple's revenue develop over the last four quarters?")

With strict set, OpenAI requires every property to be listed as required; the
tool schemas make optional fields nullable and the tools drop the nulls again
before applying defaults.
*/
package openai
