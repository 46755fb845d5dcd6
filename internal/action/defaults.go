package action

// Action identifiers. The set is closed; adding an entry here requires a
// matching row in the definitions table.
const (
	// Navigation
	NewChat       ID = "new-chat"
	NewWindow     ID = "new-window"
	CommandMenu   ID = "command-menu"
	OpenSettings  ID = "open-settings"
	SearchChats   ID = "search-chats"
	ToggleSidebar ID = "toggle-sidebar"
	NextChat      ID = "next-chat"
	PreviousChat  ID = "previous-chat"
	FocusInput    ID = "focus-input"

	// Zoom
	ZoomIn    ID = "zoom-in"
	ZoomOut   ID = "zoom-out"
	ZoomReset ID = "zoom-reset"

	// Chat
	DeleteChat         ID = "delete-chat"
	RenameChat         ID = "rename-chat"
	CopyLastResponse   ID = "copy-last-response"
	RegenerateResponse ID = "regenerate-response"
	StopResponse       ID = "stop-response"
	PinChat            ID = "pin-chat"
	ArchiveChat        ID = "archive-chat"
	ExportChat         ID = "export-chat"
	ToggleModelPicker  ID = "toggle-model-picker"
	AttachFile         ID = "attach-file"

	// Quick chat
	AmbientChat           ID = "ambient-chat"
	AmbientChatScreenshot ID = "ambient-chat-screenshot"
	AmbientChatSend       ID = "ambient-chat-send"
	AmbientChatClear      ID = "ambient-chat-clear"
	AmbientChatDismiss    ID = "ambient-chat-dismiss"
)

// definitions is the registry table, in presentation order.
var definitions = []Definition{
	// Navigation
	{ID: NewChat, Label: "New chat", Description: "Start a new chat", Scope: ScopeNavigation, Default: "Meta+N", Visible: true},
	{ID: NewWindow, Label: "New window", Description: "Open a new application window", Scope: ScopeNavigation, Default: "Meta+Shift+N", Visible: true},
	{ID: CommandMenu, Label: "Command menu", Description: "Open the command menu", Scope: ScopeNavigation, Default: "Meta+K", Visible: true},
	{ID: OpenSettings, Label: "Settings", Description: "Open the settings dialog", Scope: ScopeNavigation, Default: "Meta+,", Visible: true},
	{ID: SearchChats, Label: "Search chats", Description: "Search across chat history", Scope: ScopeNavigation, Default: "Meta+F", Visible: true},
	{ID: ToggleSidebar, Label: "Toggle sidebar", Description: "Show or hide the chat sidebar", Scope: ScopeNavigation, Default: "Meta+Shift+S", Visible: true},
	{ID: NextChat, Label: "Next chat", Description: "Switch to the next chat in the sidebar", Scope: ScopeNavigation, Default: "Meta+Shift+]", Visible: true},
	{ID: PreviousChat, Label: "Previous chat", Description: "Switch to the previous chat in the sidebar", Scope: ScopeNavigation, Default: "Meta+Shift+[", Visible: true},
	{ID: FocusInput, Label: "Focus chat input", Description: "Move focus to the message input", Scope: ScopeNavigation, Default: "Meta+L", Visible: true},

	// Zoom
	{ID: ZoomIn, Label: "Zoom in", Description: "Increase the content zoom level", Scope: ScopeZoom, Default: "Meta+=", Visible: true},
	{ID: ZoomOut, Label: "Zoom out", Description: "Decrease the content zoom level", Scope: ScopeZoom, Default: "Meta+-", Visible: true},
	{ID: ZoomReset, Label: "Reset zoom", Description: "Reset the content zoom level", Scope: ScopeZoom, Default: "Meta+0", Visible: true},

	// Chat
	{ID: DeleteChat, Label: "Delete chat", Description: "Delete the active chat", Scope: ScopeChat, Default: "Meta+Shift+Backspace", Visible: true},
	{ID: RenameChat, Label: "Rename chat", Description: "Rename the active chat", Scope: ScopeChat, Default: "Meta+Shift+R", Visible: true},
	{ID: CopyLastResponse, Label: "Copy last response", Description: "Copy the most recent response to the clipboard", Scope: ScopeChat, Default: "Meta+Shift+C", Visible: true},
	{ID: RegenerateResponse, Label: "Regenerate response", Description: "Regenerate the most recent response", Scope: ScopeChat, Default: "Meta+R", Visible: true},
	{ID: StopResponse, Label: "Stop response", Description: "Stop the in-flight response", Scope: ScopeChat, Default: "Meta+.", Visible: true},
	{ID: PinChat, Label: "Pin chat", Description: "Pin or unpin the active chat", Scope: ScopeChat, Default: "Meta+Shift+P", Visible: true},
	{ID: ArchiveChat, Label: "Archive chat", Description: "Archive the active chat", Scope: ScopeChat, Default: "Meta+Shift+A", Visible: true},
	{ID: ExportChat, Label: "Export chat", Description: "Export the active chat as a file", Scope: ScopeChat, Default: "Meta+Shift+E", Visible: true},
	{ID: ToggleModelPicker, Label: "Model picker", Description: "Open the model picker", Scope: ScopeChat, Default: "Meta+/", Visible: true},
	{ID: AttachFile, Label: "Attach file", Description: "Attach a file to the message", Scope: ScopeChat, Default: "Meta+Shift+U", Visible: true},

	// Quick chat
	{ID: AmbientChat, Label: "Ambient chat", Description: "Toggle the system-wide ambient chat window", Scope: ScopeQuickChat, Default: "Alt+Space", RequiresRestart: true, Visible: true},
	{ID: AmbientChatScreenshot, Label: "Ambient chat with screenshot", Description: "Open ambient chat with a screen capture attached", Scope: ScopeQuickChat, Default: "Alt+Shift+S", RequiresRestart: true, Visible: true},
	{ID: AmbientChatSend, Label: "Send ambient chat", Description: "Send the ambient chat message to a full chat", Scope: ScopeQuickChat, Default: "Alt+Enter", Visible: true},
	{ID: AmbientChatClear, Label: "Clear ambient chat", Description: "Clear the ambient chat input", Scope: ScopeQuickChat, Default: "Alt+Backspace", Visible: true},
	{ID: AmbientChatDismiss, Label: "Dismiss ambient chat", Description: "Hide the ambient chat window", Scope: ScopeQuickChat, Default: "Escape", Visible: false},
}
