/*
Package editor contains the data model for the Piirto waveform editor GUI.

The editor package defines the Model struct, which holds the entire application
state, including the project data, the view transform, the draw tool state and
large part of the UI state.

The GUI does not modify the Model data directly, rather, there are types Action,
Bool, Int and String which can be used to manipulate the model data in a
controlled way. For example, model.RequestQuit() returns an Action to quit the
application, which can be executed with model.RequestQuit().Do().

The various Actions and other data manipulation methods are grouped based on
their functionalities. For example, model.Draw() groups all the ways the draw
tool manipulates samples and model.Alerts() groups the transient alert popups.
*/
package editor
